package store

import (
	"path/filepath"
	"testing"

	"github.com/inovacc/gradients/internal/model"
	"github.com/inovacc/gradients/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStores(t *testing.T) map[string]Store {
	t.Helper()

	dir := t.TempDir()

	bolt, err := NewBolt(filepath.Join(dir, "test.bolt"))
	if err != nil {
		t.Fatalf("failed to create bolt store: %v", err)
	}

	sqlite, err := NewSQLite(filepath.Join(dir, "test.db"))
	if err != nil {
		_ = bolt.Close()

		t.Fatalf("failed to create sqlite store: %v", err)
	}

	t.Cleanup(func() {
		if err := bolt.Close(); err != nil {
			t.Logf("failed to close bolt: %v", err)
		}

		if err := sqlite.Close(); err != nil {
			t.Logf("failed to close sqlite: %v", err)
		}
	})

	return map[string]Store{
		"bolt":   bolt,
		"sqlite": sqlite,
		"memory": NewMemory(),
	}
}

func TestStore_Ping(t *testing.T) {
	for name, s := range setupTestStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Ping(); err != nil {
				t.Errorf("Ping() error = %v, want nil", err)
			}
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, s := range setupTestStores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := s.Get("never-written")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStore_PutGetOverwrite(t *testing.T) {
	for name, s := range setupTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(params.KeyFavoriteGradients, []byte("[1,2]")))

			got, err := s.Get(params.KeyFavoriteGradients)
			require.NoError(t, err)
			assert.Equal(t, "[1,2]", string(got))

			// Last write wins.
			require.NoError(t, s.Put(params.KeyFavoriteGradients, []byte("[3]")))

			got, err = s.Get(params.KeyFavoriteGradients)
			require.NoError(t, err)
			assert.Equal(t, "[3]", string(got))
		})
	}
}

func TestStore_DeleteAndKeys(t *testing.T) {
	for name, s := range setupTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put("b", []byte("2")))
			require.NoError(t, s.Put("a", []byte("1")))

			keys, err := s.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, keys)

			require.NoError(t, s.Delete("a"))
			require.NoError(t, s.Delete("missing"))

			keys, err = s.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"b"}, keys)
		})
	}
}

func TestBolt_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.bolt")

	db, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, db.Put(params.KeyCustomGradients, []byte(`[{"id":9}]`)))
	require.NoError(t, db.Close())

	db, err = NewBolt(path)
	require.NoError(t, err)

	defer func() { _ = db.Close() }()

	got, err := db.Get(params.KeyCustomGradients)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":9}]`, string(got))
}

func TestOpen(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{params.BackendBolt, false},
		{params.BackendSQLite, false},
		{"", false},
		{"postgres", true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			s, err := Open(tt.backend, t.TempDir())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, s.Close())
		})
	}
}

func TestAdapter_RoundTrip(t *testing.T) {
	adapter := NewAdapter(NewMemory(), nil)

	custom := []model.Gradient{{
		ID:          9,
		Name:        "Mine",
		Gradient:    "linear-gradient(90deg, #000000 0%, #ffffff 100%)",
		Colors:      []string{"#000000", "#ffffff"},
		Description: "Custom custom gradient",
		Category:    "Custom",
	}}

	require.NoError(t, adapter.Save(params.KeyCustomGradients, custom))

	got, ok := Load[[]model.Gradient](adapter, params.KeyCustomGradients)
	require.True(t, ok)
	assert.Equal(t, custom, got)

	require.NoError(t, adapter.Save(params.KeyFavoriteGradients, []int{4, 2}))

	favs, ok := Load[[]int](adapter, params.KeyFavoriteGradients)
	require.True(t, ok)
	assert.Equal(t, []int{4, 2}, favs)
}

func TestAdapter_LoadAbsentOrCorrupt(t *testing.T) {
	blobs := NewMemory()
	adapter := NewAdapter(blobs, nil)

	_, ok := Load[[]int](adapter, params.KeyFavoriteGradients)
	assert.False(t, ok, "never written key should load as absent")

	require.NoError(t, blobs.Put(params.KeyFavoriteGradients, []byte("{corrupt")))

	got, ok := Load[[]int](adapter, params.KeyFavoriteGradients)
	assert.False(t, ok, "corrupt blob should load as absent")
	assert.Nil(t, got)
}

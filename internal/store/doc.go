// Package store provides the durable blob storage for gradients.
//
// The package defines the [Store] interface, a minimal key-value contract
// that every backend satisfies. The default backend is BoltDB, an embedded
// key-value store; SQLite is available as an alternative.
//
// # Store Interface
//
// The [Store] interface defines methods for:
//   - Reading and writing opaque blobs by key (Get, Put, Delete)
//   - Enumerating keys (Keys)
//   - Lifecycle (Ping, Close)
//
// # Persistence Adapter
//
// [Adapter] sits on top of a [Store] and encodes values as JSON. Reads are
// tolerant: a missing key or a blob that fails to parse loads as "absent"
// so a corrupt blob never prevents the application from starting.
//
//	blobs, err := store.Open(params.BackendBolt, dataDir)
//	adapter := store.NewAdapter(blobs, logger)
//	favorites, ok := store.Load[[]int](adapter, params.KeyFavoriteGradients)
//
// Keys are written independently; there is no transaction spanning them.
package store

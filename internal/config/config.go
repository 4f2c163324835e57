// Package config loads the application configuration.
//
// Values are layered, later layers winning:
//
//  1. [model.DefaultConfig]
//  2. the ini file (sections [store], [export] and [log])
//  3. a .env file in the working directory
//  4. GRADIENTS_* environment variables
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/inovacc/gradients/internal/application"
	"github.com/inovacc/gradients/internal/encoding"
	"github.com/inovacc/gradients/internal/model"
	"github.com/inovacc/gradients/internal/params"
	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

const (
	EnvDataDir      = application.EnvPrefix + "DATA_DIR"
	EnvBackend      = application.EnvPrefix + "BACKEND"
	EnvExportDir    = application.EnvPrefix + "EXPORT_DIR"
	EnvExportWidth  = application.EnvPrefix + "EXPORT_WIDTH"
	EnvExportHeight = application.EnvPrefix + "EXPORT_HEIGHT"
	EnvLogLevel     = application.EnvPrefix + "LOG_LEVEL"
	EnvLogFormat    = application.EnvPrefix + "LOG_FORMAT"
)

// Load builds the configuration from the ini file at path (skipped when it
// does not exist), the .env file and the environment. The result is not
// validated; callers apply their own overrides first and then call
// [Validate].
func Load(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if path != "" && encoding.FileExists(path) {
		if err := readINI(path, &cfg); err != nil {
			return cfg, err
		}
	}

	// A missing .env is the normal case.
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func readINI(path string, cfg *model.Config) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	storeSec := file.Section("store")
	cfg.DataDir = storeSec.Key("data_dir").MustString(cfg.DataDir)
	cfg.Backend = storeSec.Key("backend").MustString(cfg.Backend)

	exportSec := file.Section("export")
	cfg.ExportDir = exportSec.Key("dir").MustString(cfg.ExportDir)
	cfg.ExportWidth = exportSec.Key("width").MustInt(cfg.ExportWidth)
	cfg.ExportHeight = exportSec.Key("height").MustInt(cfg.ExportHeight)

	logSec := file.Section("log")
	cfg.LogLevel = logSec.Key("level").MustString(cfg.LogLevel)
	cfg.LogFormat = logSec.Key("format").MustString(cfg.LogFormat)

	return nil
}

func applyEnv(cfg *model.Config) error {
	strs := map[string]*string{
		EnvDataDir:   &cfg.DataDir,
		EnvBackend:   &cfg.Backend,
		EnvExportDir: &cfg.ExportDir,
		EnvLogLevel:  &cfg.LogLevel,
		EnvLogFormat: &cfg.LogFormat,
	}

	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		EnvExportWidth:  &cfg.ExportWidth,
		EnvExportHeight: &cfg.ExportHeight,
	}

	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", key, v, err)
		}

		*dst = n
	}

	return nil
}

// Validate rejects configurations the application cannot run with.
func Validate(cfg model.Config) error {
	if !slices.Contains([]string{params.BackendBolt, params.BackendSQLite}, cfg.Backend) {
		return fmt.Errorf("unknown backend %q (want %s or %s)", cfg.Backend, params.BackendBolt, params.BackendSQLite)
	}

	if cfg.DataDir == "" {
		return fmt.Errorf("data directory is empty")
	}

	if cfg.ExportWidth <= 0 || cfg.ExportHeight <= 0 {
		return fmt.Errorf("invalid export size %dx%d", cfg.ExportWidth, cfg.ExportHeight)
	}

	if !slices.Contains([]string{"text", "json"}, cfg.LogFormat) {
		return fmt.Errorf("unknown log format %q (want text or json)", cfg.LogFormat)
	}

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return err
	}

	return nil
}

// Save writes cfg to path as an ini file.
func Save(path string, cfg model.Config) error {
	file := ini.Empty()

	storeSec := file.Section("store")
	storeSec.Key("data_dir").SetValue(cfg.DataDir)
	storeSec.Key("backend").SetValue(cfg.Backend)

	exportSec := file.Section("export")
	exportSec.Key("dir").SetValue(cfg.ExportDir)
	exportSec.Key("width").SetValue(strconv.Itoa(cfg.ExportWidth))
	exportSec.Key("height").SetValue(strconv.Itoa(cfg.ExportHeight))

	logSec := file.Section("log")
	logSec.Key("level").SetValue(cfg.LogLevel)
	logSec.Key("format").SetValue(cfg.LogFormat)

	if err := encoding.EnsureParentDir(path); err != nil {
		return err
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

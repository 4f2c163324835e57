package model

import (
	"os"
	"path/filepath"

	"github.com/inovacc/gradients/internal/application"
	"github.com/inovacc/gradients/internal/params"
)

// Config holds the application configuration
type Config struct {
	// DataDir is where the blob store file lives
	DataDir string `json:"data_dir"`

	// Backend selects the blob store implementation ("bolt" or "sqlite")
	Backend string `json:"backend"`

	// ExportDir is the default directory for exported files
	ExportDir string `json:"export_dir"`

	// ExportWidth is the default raster/vector width in pixels
	ExportWidth int `json:"export_width"`

	// ExportHeight is the default raster/vector height in pixels
	ExportHeight int `json:"export_height"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"log_level"`

	// LogFormat is "text" or "json"
	LogFormat string `json:"log_format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	dataDir, err := application.GetApplicationDirectory()
	if err != nil {
		dataDir = filepath.Join(".", application.AppName)
	}

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}

	return Config{
		DataDir:      dataDir,
		Backend:      params.BackendBolt,
		ExportDir:    exportDir,
		ExportWidth:  params.DefaultExportWidth,
		ExportHeight: params.DefaultExportHeight,
		LogLevel:     "warn",
		LogFormat:    "text",
	}
}

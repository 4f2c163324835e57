package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "gradients"

	// AppExeName is the executable name (without extension)
	AppExeName = "gradients"

	// EnvPrefix prefixes every environment variable the application reads
	EnvPrefix = "GRADIENTS_"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the gradients configuration directory path.
// Linux: ~/.config/gradients (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\gradients (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, errDir
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
	}

	appDir = filepath.Join(baseDir, AppName)
}

// Package where resolves the directories the application reads from and writes to.
package where

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/abouramd/live-stream/constant"
	"github.com/abouramd/live-stream/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory when set.
var EnvConfigPath = strings.ToUpper(constant.App) + "_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, creating it when missing.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache returns the cache directory.
// Falls back to ./cache when the platform provides none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

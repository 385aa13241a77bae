// Package cache prunes stale files from the cache directory.
package cache

import (
	"io/fs"
	"time"

	"github.com/abouramd/live-stream/filesystem"
	"github.com/abouramd/live-stream/log"
	"github.com/spf13/afero"
)

// TTL is the age after which a cache file is removed regardless of its own lifetime.
const TTL = 7 * 24 * time.Hour

// Prune removes files under dir last modified before now minus ttl and
// returns how many were removed.
func Prune(dir string, ttl time.Duration, now time.Time) int {
	var removed int

	fsys := filesystem.API()
	_ = afero.Walk(fsys, dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if now.Sub(info.ModTime()) <= ttl {
			return nil
		}

		if err := fsys.Remove(path); err != nil {
			log.Warnf("cache: removing %s: %v", path, err)
			return nil
		}

		removed++
		return nil
	})

	return removed
}

// CollectGarbage prunes dir in the background.
func CollectGarbage(dir string) {
	go func() {
		if n := Prune(dir, TTL, time.Now()); n > 0 {
			log.Infof("cache: pruned %d stale files", n)
		}
	}()
}

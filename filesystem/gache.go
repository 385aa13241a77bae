package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// GacheFs lets gache caches persist through afero.
// A nil Fs routes every call to the global backend returned by API.
type GacheFs struct {
	Fs afero.Fs
}

func (g GacheFs) target() afero.Fs {
	if g.Fs != nil {
		return g.Fs
	}
	return API()
}

func (g GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return g.target().OpenFile(name, flag, perm)
}

func (g GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return g.target().MkdirAll(path, perm)
}

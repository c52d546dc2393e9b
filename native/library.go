package native

import (
	"io"
	"os"
	"path/filepath"
)

// Library is an open handle on the shared library.
type Library struct {
	Path   string
	handle uintptr
}

// DefaultLibraryPath places LibraryName next to the running executable.
func DefaultLibraryPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), LibraryName), nil
}

// Load opens the library at path and binds SymbolName, returning a ready
// Provider. The caller owns the returned Library and must Close it.
func Load(path string, out io.Writer) (*Library, *Provider, error) {
	lib, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	fn, err := lib.Bind(SymbolName)
	if err != nil {
		lib.Close()
		return nil, nil, err
	}
	return lib, NewProvider(fn, out), nil
}

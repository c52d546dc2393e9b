//go:build darwin || freebsd || linux

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Open loads the shared library at path.
func Open(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrLoadLibrary, path, err)
	}
	return &Library{Path: path, handle: handle}, nil
}

// Bind resolves symbol and registers it as a SequenceFunc.
func (l *Library) Bind(symbol string) (SequenceFunc, error) {
	sym, err := purego.Dlsym(l.handle, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' in %s: %v", ErrMissingSymbol, symbol, l.Path, err)
	}
	var fn SequenceFunc
	purego.RegisterFunc(&fn, sym)
	return fn, nil
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}

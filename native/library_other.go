//go:build !(darwin || freebsd || linux)

package native

import "fmt"

func Open(path string) (*Library, error) {
	return nil, fmt.Errorf("%w %s: %v", ErrLoadLibrary, path, ErrUnsupportedPlatform)
}

func (l *Library) Bind(symbol string) (SequenceFunc, error) {
	return nil, fmt.Errorf("%w: '%s': %v", ErrMissingSymbol, symbol, ErrUnsupportedPlatform)
}

func (l *Library) Close() error { return nil }

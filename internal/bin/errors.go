package bin

import "github.com/pkg/errors"

var (
	ErrAllocationExhausted = errors.New("id pool exhausted")
	ErrUnsupportedPlugin   = errors.New("plugin has no load capability")
	ErrLoadFailed          = errors.New("plugin failed to load object")
	ErrNotFound            = errors.New("not found")
)

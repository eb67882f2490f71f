package configs

import (
	"errors"
)

// First returns the value at path from the first config file that sets it,
// or the zero value.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		var zero T
		return zero
	}
	if err != nil {
		panic(err)
	}
	return
}

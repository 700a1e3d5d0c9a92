package engine

import "errors"

// ErrEmptyInput is returned by reductions that are undefined over an empty
// series, instead of silently producing 0 or NaN.
var ErrEmptyInput = errors.New("empty input series")

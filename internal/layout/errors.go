package layout

import "errors"

// ErrInvalidDimension is returned when a size or target dimension is not
// positive.
var ErrInvalidDimension = errors.New("layout: invalid dimension")

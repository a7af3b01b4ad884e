package field

import "errors"

// ErrDomain is returned by inversion and division when the operand is zero,
// and by element construction when a residue is not reduced below the
// modulus.
var ErrDomain = errors.New("field: domain error")

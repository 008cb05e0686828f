package address

import "errors"

// ErrInvalidValue is returned when decoding an address field that is neither
// a string, an address object, nor an array of those.
var ErrInvalidValue = errors.New("address: invalid address value")

package arr

import "errors"

// ErrIndexOutOfRange is returned by positional helpers when the index does
// not address a valid position.
var ErrIndexOutOfRange = errors.New("arr: index out of range")

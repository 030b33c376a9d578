package rope

import "errors"

// ErrInvalidUTF8 is returned by Insert/InsertAtWChar when the supplied
// byte string is not well-formed UTF-8. The rope is left byte-for-byte
// and metric-for-metric unchanged when this is returned.
var ErrInvalidUTF8 = errors.New("rope: invalid UTF-8")

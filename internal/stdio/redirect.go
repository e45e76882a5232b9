package stdio

import "errors"

// OutName is the name of the file acquired by Acquire.
const OutName = "out"

var ErrUnsupported = errors.New("stdout redirection is not supported on this platform")

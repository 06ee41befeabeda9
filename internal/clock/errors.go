package clock

import "errors"

var ErrUnknownTickMode = errors.New("unknown tick mode")

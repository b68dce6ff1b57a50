package bmphide

import "errors"

// ErrEmptyMessage is returned by Encode when the message to hide is empty.
var ErrEmptyMessage = errors.New("bmphide: message is empty")

package executor

import "errors"

// ErrUnsupportedOperation indicates an operation type the executor does
// not know. It can only occur if the operation set and the executor go
// out of sync.
var ErrUnsupportedOperation = errors.New("unsupported operation")

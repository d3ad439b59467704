package errors

import "errors"

// ErrOptimisticLock is returned when a versioned update touches a record that
// was modified by another operation in the meantime.
var ErrOptimisticLock = errors.New("record was modified by another operation, retry with fresh data")

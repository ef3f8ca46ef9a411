package cache

import (
	"errors"
	"fmt"
)

// CacheError wraps a failed cache operation on one key. Retryable marks
// transport failures; encoding failures will not succeed on retry.
type CacheError struct {
	Op        string
	Key       string
	Err       error
	Retryable bool
}

func newCacheError(op, key string, err error, retryable bool) *CacheError {
	return &CacheError{Op: op, Key: key, Err: err, Retryable: retryable}
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a cache failure worth retrying.
func IsRetryable(err error) bool {
	var cacheErr *CacheError
	return errors.As(err, &cacheErr) && cacheErr.Retryable
}

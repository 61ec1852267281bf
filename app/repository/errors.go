package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrNoActivePlan means a plan change was attempted for a vendor with no
	// active plan row. Fatal to that operation, not retried.
	ErrNoActivePlan = errors.New("no active plan found for vendor")

	// ErrCreationFailed means the vendor creation transaction rolled back;
	// nothing was persisted.
	ErrCreationFailed = errors.New("vendor creation failed")

	// ErrTransaction means a multi-row write failed partway and the whole
	// transaction rolled back.
	ErrTransaction = errors.New("transaction failed")

	// ErrTransient marks storage timeouts that are safe to retry with backoff.
	ErrTransient = errors.New("transient storage error")
)

// wrapStorageErr classifies a storage failure: timeouts become retryable
// ErrTransient, everything else wraps the given fallback sentinel.
func wrapStorageErr(err, fallback error) error {
	if err == nil {
		return nil
	}
	if isTimeout(err) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return fmt.Errorf("%w: %v", fallback, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

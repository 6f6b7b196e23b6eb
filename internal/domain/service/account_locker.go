package service

import "context"

// AccountLocker serializes read-modify-write cycles on a single account.
type AccountLocker interface {
	// Lock blocks until the key is held or ctx is done. The returned release
	// function must be called exactly once.
	Lock(ctx context.Context, key string) (release func(), err error)
}

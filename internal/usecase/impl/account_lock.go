package impl

import (
	"context"

	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/repository"
	"pitstop/internal/domain/service"

	"github.com/pkg/errors"
)

func accountLockKey(username string) string {
	return "account:" + username
}

// withAccountLock runs fn while holding the lock for username. Every
// read-modify-write of a single account goes through here.
func withAccountLock(ctx context.Context, locker service.AccountLocker, username string, fn func() error) error {
	release, err := locker.Lock(ctx, accountLockKey(username))
	if err != nil {
		return errors.WithMessage(domainerrors.ErrAccountBusy, err.Error())
	}
	defer release()

	return fn()
}

// customerLookupError maps a repository miss to the customer not-found error.
func customerLookupError(err error, username string) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound.WithDetails("customer not found: " + username)
	}

	return errors.Wrap(err, "failed to find customer")
}

// workshopLookupError maps a repository miss to the workshop not-found error.
func workshopLookupError(err error, ref string) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrWorkshopNotFound.WithDetails("workshop not found: " + ref)
	}

	return errors.Wrap(err, "failed to find workshop")
}

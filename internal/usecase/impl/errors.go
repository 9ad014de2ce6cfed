// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateRepoError maps repository sentinels onto the domain errors the API renders.
// Anything unrecognised is wrapped with msg and passed through.
func translateRepoError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, msg)
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, msg)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, msg)
	case errors.Is(err, repository.ErrInvalidID):
		return errors.Wrap(domainerrors.ErrInvalidID.WithDetails(err.Error()), msg)
	default:
		return errors.Wrap(err, msg)
	}
}

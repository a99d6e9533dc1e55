package http

import (
	"errors"

	"cost-item-service/internal/costitem"
	"cost-item-service/internal/costitem/repository"
	pkgErrors "cost-item-service/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
// Validation errors from pkg/check are already HTTPErrors and pass through
// untouched so their messages reach the client verbatim.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch {
	case errors.Is(err, costitem.ErrNotFound):
		return pkgErrors.NewNotFound(costitem.ErrNotFound.Error())
	case errors.Is(err, repository.ErrFailedToInsert),
		errors.Is(err, repository.ErrFailedToGet),
		errors.Is(err, repository.ErrFailedToList),
		errors.Is(err, repository.ErrFailedToUpdate),
		errors.Is(err, repository.ErrFailedToDelete):
		return pkgErrors.NewInternalServerError(err.Error())
	default:
		return err
	}
}

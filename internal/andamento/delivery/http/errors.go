package http

import (
	"errors"
	"net/http"

	"legal-office-management/internal/andamento"
	pkgErrors "legal-office-management/pkg/errors"
)

var (
	errInvalidHoje = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid hoje: use dd/mm/yyyy, yyyy-mm-dd or an expression like amanhã, em 3 dias")
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

// mapError translates domain errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, andamento.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, andamento.ErrInvalidID),
		errors.Is(err, andamento.ErrProcessoRequired),
		errors.Is(err, andamento.ErrInvalidCNJ),
		errors.Is(err, andamento.ErrNoMovements):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, andamento.ErrLawsuitNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, andamento.ErrProviderUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package http

import (
	"errors"
	"net/http"

	"legal-office-management/internal/prazo"
	pkgErrors "legal-office-management/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date: use dd/mm/yyyy, yyyy-mm-dd or an expression like amanhã, em 3 dias")
)

// mapError translates domain errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, prazo.ErrNotFound),
		errors.Is(err, prazo.ErrAndamentoNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, prazo.ErrInvalidID),
		errors.Is(err, prazo.ErrProjectRequired),
		errors.Is(err, prazo.ErrTitleRequired),
		errors.Is(err, prazo.ErrDateRequired),
		errors.Is(err, prazo.ErrFilterRequired),
		errors.Is(err, prazo.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, prazo.ErrNoDeadline),
		errors.Is(err, prazo.ErrIntimacaoClosed):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

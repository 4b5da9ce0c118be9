package http

import (
	"net/http"

	pkgErrors "legal-office-management/pkg/errors"
)

var (
	errInvalidHoje = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid hoje: use dd/mm/yyyy, yyyy-mm-dd or an expression like amanhã, em 3 dias")
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

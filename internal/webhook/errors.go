package webhook

import (
	"net/http"

	pkgErrors "legal-office-management/pkg/errors"
)

var (
	errInvalidPayload   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid movement batch payload")
	errMissingProcesso  = pkgErrors.NewHTTPError(http.StatusBadRequest, "processo_oab_id is required")
	errRelayUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "could not queue movements, retry later")
)

package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "legal-office-management/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "duplicated"))

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected wrapped HTTPError to be found")
	}
	if he.Code != http.StatusConflict || he.Error() != "duplicated" {
		t.Errorf("unexpected HTTPError: %+v", he)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error must not be an HTTPError")
	}
}

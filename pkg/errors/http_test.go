package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "calendar-converter/pkg/errors"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"http error", pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "bad date"), http.StatusUnprocessableEntity},
		{"wrapped http error", fmt.Errorf("ctx: %w", pkgErrors.ErrTooManyRequests), http.StatusTooManyRequests},
		{"plain error", errors.New("x"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pkgErrors.StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	if got := pkgErrors.NewHTTPError(502, "engine unavailable").Error(); got != "engine unavailable" {
		t.Errorf("Error() = %q", got)
	}
}

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"value_is_invalid", errs.NewValueIsInvalidError("rating"), http.StatusBadRequest},
		{"value_is_required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"value_out_of_range", errs.NewValueIsOutOfRangeError("rating", 9, 1, 5), http.StatusBadRequest},
		{"invalid_transition", errs.NewInvalidStatusTransitionError("placed", "delivered"), http.StatusBadRequest},
		{"not_found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"not_authorized", errs.NewNotAuthorizedError("customer", "order.transition"), http.StatusForbidden},
		{"http_error_passthrough", echo.NewHTTPError(http.StatusForbidden, "missing or invalid principal"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t)

			require.NoError(t, respondError(ctx, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRespondError_UnclassifiedLeaksNoDetail(t *testing.T) {
	ctx, rec := newTestContext(t)

	require.NoError(t, respondError(ctx, errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "internal server error")
}

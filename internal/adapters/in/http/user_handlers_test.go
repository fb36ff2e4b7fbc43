package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRoutes_UseMenuItemPathParameter(t *testing.T) {
	e := echo.New()
	NewServer(Commands{}, Queries{}, services.NewAccessPolicy()).RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered["POST /api/users/favorites/:menuItemId"])
	assert.True(t, registered["DELETE /api/users/favorites/:menuItemId"])
	assert.False(t, registered["POST /api/users/favorites"], "the item id travels in the path, not a body")
}

func TestAddFavorite_MalformedMenuItemID(t *testing.T) {
	server := NewServer(Commands{}, Queries{}, services.NewAccessPolicy())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(HeaderUserID, kernel.NewUUID().String())
	req.Header.Set(HeaderUserRole, "customer")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("menuItemId")
	ctx.SetParamValues("not-a-uuid")

	require.NoError(t, server.AddFavorite(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gounamur/travel-backend/internal/service"
	"github.com/gounamur/travel-backend/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func RegisterFavorites(e *echo.Echo, auth *service.AuthService, favorites *service.FavoriteService) {
	handler := &FavoriteHandler{favorites: favorites}

	protected := e.Group("/api/favorites", RequireAuth(auth))
	protected.GET("", handler.listFavorites)
	protected.POST("/:destination_id", handler.addFavorite)
	protected.DELETE("/:destination_id", handler.removeFavorite)
}

func (h *FavoriteHandler) addFavorite(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c, "authentication required")
	}
	destinationID, err := pathID(c, "destination_id")
	if err != nil {
		return writeError(c, err)
	}

	favorite, err := h.favorites.Add(c.Request().Context(), user.ID, destinationID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"favorite": util.Envelope{
			"id":             favorite.ID,
			"destination_id": favorite.DestinationID,
			"saved_at":       favorite.CreatedAt.UTC().Format(time.RFC3339),
		},
		"message": "Destination saved to favorites",
	})
}

func (h *FavoriteHandler) removeFavorite(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c, "authentication required")
	}
	destinationID, err := pathID(c, "destination_id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.favorites.Remove(c.Request().Context(), user.ID, destinationID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"destination_id": destinationID,
		"message":        "Destination removed from favorites",
	})
}

func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c, "authentication required")
	}

	destinations, err := h.favorites.List(c.Request().Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("favorites", toDestinationResponses(destinations)))
}

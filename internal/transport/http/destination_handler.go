package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gounamur/travel-backend/internal/service"
	"github.com/gounamur/travel-backend/internal/util"
)

type DestinationHandler struct {
	destinations *service.DestinationService
	favorites    *service.FavoriteService
}

func RegisterDestinations(e *echo.Echo, destinations *service.DestinationService, favorites *service.FavoriteService) {
	handler := &DestinationHandler{
		destinations: destinations,
		favorites:    favorites,
	}

	public := e.Group("/api/destinations")
	public.GET("", handler.listDestinations)
	public.GET("/continents", handler.listContinents)
	public.GET("/:id", handler.getDestination)
	public.GET("/:id/favorites/count", handler.countFavorites)
}

func (h *DestinationHandler) listDestinations(c echo.Context) error {
	filter, err := parseDestinationFilter(c)
	if err != nil {
		return writeError(c, err)
	}

	items, page, err := h.destinations.List(c.Request().Context(), filter)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": toDestinationResponses(items),
		"meta":         PageMeta{Skip: page.Skip, Limit: page.Limit, Count: len(items)},
	})
}

func (h *DestinationHandler) listContinents(c echo.Context) error {
	continents, err := h.destinations.Continents(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("continents", continents))
}

func (h *DestinationHandler) getDestination(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	dest, err := h.destinations.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destination", toDestinationResponse(dest)))
}

func (h *DestinationHandler) countFavorites(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	count, err := h.favorites.Count(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"destination_id": id,
		"favorites":      count,
	})
}

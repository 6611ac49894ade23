package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gounamur/travel-backend/internal/service"
	"github.com/gounamur/travel-backend/internal/util"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

// RegisterCatalog mounts the read-only views that span destinations and packages.
func RegisterCatalog(e *echo.Echo, catalog *service.CatalogService) {
	handler := &CatalogHandler{catalog: catalog}

	e.GET("/api/search", handler.search)
	e.GET("/api/featured", handler.featured)
}

func (h *CatalogHandler) search(c echo.Context) error {
	result, err := h.catalog.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"query":        result.Query,
		"destinations": toDestinationResponses(result.Destinations),
		"packages":     toPackageResponses(result.Packages),
	})
}

func (h *CatalogHandler) featured(c echo.Context) error {
	featured, err := h.catalog.Featured(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": toDestinationResponses(featured.Destinations),
		"packages":     toPackageResponses(featured.Packages),
	})
}

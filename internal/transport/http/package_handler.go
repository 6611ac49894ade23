package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gounamur/travel-backend/internal/service"
	"github.com/gounamur/travel-backend/internal/util"
)

type PackageHandler struct {
	packages *service.PackageService
}

func RegisterPackages(e *echo.Echo, packages *service.PackageService) {
	handler := &PackageHandler{packages: packages}

	public := e.Group("/api/packages")
	public.GET("", handler.listPackages)
	public.GET("/:id", handler.getPackage)
}

func (h *PackageHandler) listPackages(c echo.Context) error {
	filter, err := parsePackageFilter(c)
	if err != nil {
		return writeError(c, err)
	}

	items, page, err := h.packages.List(c.Request().Context(), filter)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"packages": toPackageResponses(items),
		"meta":     PageMeta{Skip: page.Skip, Limit: page.Limit, Count: len(items)},
	})
}

func (h *PackageHandler) getPackage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	pkg, err := h.packages.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("package", toPackageResponse(pkg)))
}

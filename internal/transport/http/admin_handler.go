package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gounamur/travel-backend/internal/media"
	"github.com/gounamur/travel-backend/internal/service"
	"github.com/gounamur/travel-backend/internal/util"
)

// AdminHandler manages the catalog. Every route requires an admin account.
type AdminHandler struct {
	destinations *service.DestinationService
	packages     *service.PackageService
}

func RegisterAdmin(e *echo.Echo, auth *service.AuthService, destinations *service.DestinationService, packages *service.PackageService) {
	handler := &AdminHandler{
		destinations: destinations,
		packages:     packages,
	}

	admin := e.Group("/api/admin", RequireAuth(auth), RequireAdmin())
	admin.POST("/destinations", handler.createDestination)
	admin.PUT("/destinations/:id", handler.updateDestination)
	admin.DELETE("/destinations/:id", handler.deleteDestination)
	admin.POST("/destinations/:id/image", handler.uploadDestinationImage)

	admin.POST("/packages", handler.createPackage)
	admin.PUT("/packages/:id", handler.updatePackage)
	admin.DELETE("/packages/:id", handler.deletePackage)
	admin.POST("/packages/:id/image", handler.uploadPackageImage)
}

func (h *AdminHandler) createDestination(c echo.Context) error {
	var req DestinationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	dest, err := h.destinations.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	zerolog.Ctx(c.Request().Context()).Info().Int64("destination_id", dest.ID).Msg("destination created")
	return c.JSON(http.StatusCreated, util.Data("destination", toDestinationResponse(dest)))
}

func (h *AdminHandler) updateDestination(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req DestinationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	dest, err := h.destinations.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destination", toDestinationResponse(dest)))
}

func (h *AdminHandler) deleteDestination(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.destinations.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	zerolog.Ctx(c.Request().Context()).Info().Int64("destination_id", id).Msg("destination deleted")
	return c.JSON(http.StatusOK, util.Message("Destination deleted"))
}

func (h *AdminHandler) uploadDestinationImage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return withUpload(c, func(upload media.Upload) error {
		dest, err := h.destinations.UploadImage(c.Request().Context(), id, upload)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, util.Data("destination", toDestinationResponse(dest)))
	})
}

func (h *AdminHandler) createPackage(c echo.Context) error {
	var req PackageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	pkg, err := h.packages.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	zerolog.Ctx(c.Request().Context()).Info().Int64("package_id", pkg.ID).Msg("package created")
	return c.JSON(http.StatusCreated, util.Data("package", toPackageResponse(pkg)))
}

func (h *AdminHandler) updatePackage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req PackageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	pkg, err := h.packages.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("package", toPackageResponse(pkg)))
}

func (h *AdminHandler) deletePackage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.packages.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("Package deleted"))
}

func (h *AdminHandler) uploadPackageImage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return withUpload(c, func(upload media.Upload) error {
		pkg, err := h.packages.UploadImage(c.Request().Context(), id, upload)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, util.Data("package", toPackageResponse(pkg)))
	})
}

// bindAndValidate decodes the body and runs the struct validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: invalid request body", service.ErrValidation)
	}
	return c.Validate(req)
}

// withUpload opens the multipart "file" field and hands it to fn.
func withUpload(c echo.Context, fn func(media.Upload) error) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Failure(reasonInvalidImage, "file upload required"))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Failure(reasonInvalidImage, "unable to read upload"))
	}
	defer src.Close()

	return fn(media.Upload{
		Reader:      src,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
}

package http

import (
	"net/http"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/gounamur/travel-backend/docs"
	"github.com/gounamur/travel-backend/internal/util"
)

// RegisterSwagger serves the embedded OpenAPI document as JSON and the Swagger UI under /swagger.
func RegisterSwagger(e *echo.Echo) {
	jsonSpec, convErr := yaml.YAMLToJSON(docs.SwaggerYAML)

	e.GET("/swagger/doc.json", func(c echo.Context) error {
		if convErr != nil {
			zerolog.Ctx(c.Request().Context()).Error().Err(convErr).Msg("convert swagger spec")
			return c.JSON(http.StatusInternalServerError, util.Failure(reasonInternal, "unable to parse swagger spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, jsonSpec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

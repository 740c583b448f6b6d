// Package docs отдаёт машиночитаемое описание HTTP API (OpenAPI 3).
package docs

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openapiSpec []byte

// Handler возвращает echo-обработчик, отдающий описание API.
func Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openapiSpec)
	}
}

package routes

import (
	"equipment-registry/internal/authz"
	"equipment-registry/internal/controllers"
	"equipment-registry/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runUploadRouter(api *echo.Group, ctrl *controllers.UploadController, authMW *middleware.AuthMiddleware) {
	uploads := api.Group("/uploads", authMW.Auth)

	uploads.POST("/equipment-image", ctrl.UploadEquipmentImage, authMW.AuthorizeAny(authz.UploadsCreate))
}

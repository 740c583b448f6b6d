package routes

import (
	"equipment-registry/internal/authz"
	"equipment-registry/internal/controllers"
	"equipment-registry/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runPermissionRouter(api *echo.Group, ctrl *controllers.PermissionController, authMW *middleware.AuthMiddleware) {
	permissions := api.Group("/permissions", authMW.Auth)

	permissions.GET("", ctrl.GetPermissions, authMW.AuthorizeAny(authz.Superuser))
}

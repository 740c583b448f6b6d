package routes

import (
	"equipment-registry/internal/authz"
	"equipment-registry/internal/controllers"
	"equipment-registry/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runUserEquipmentRouter(api *echo.Group, ctrl *controllers.UserEquipmentController, authMW *middleware.AuthMiddleware) {
	userEquipment := api.Group("/equipment/user", authMW.Auth)

	userEquipment.POST("", ctrl.CreateUserEquipment, authMW.AuthorizeAny(authz.UserEquipmentCreate))
	userEquipment.GET("", ctrl.GetAllUserEquipments, authMW.AuthorizeAny(authz.UserEquipmentView))
	userEquipment.DELETE("/:equipmentId", ctrl.DeleteUserEquipment, authMW.AuthorizeAny(authz.UserEquipmentDelete))
}

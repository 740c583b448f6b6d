package routes

import (
	"equipment-registry/internal/authz"
	"equipment-registry/internal/controllers"
	"equipment-registry/pkg/middleware"

	"github.com/labstack/echo/v4"
)

// Создание и чтение каталога открыты, операции над конкретной записью
// требуют аутентификации и привилегии.
func runEquipmentRouter(api *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	equipment := api.Group("/equipment")

	equipment.POST("", ctrl.CreateEquipment)
	equipment.GET("", ctrl.GetEquipments)

	equipment.GET("/export", ctrl.ExportEquipments, authMW.Auth, authMW.AuthorizeAny(authz.EquipmentView))
	equipment.GET("/:id", ctrl.FindEquipment, authMW.Auth, authMW.AuthorizeAny(authz.EquipmentView))
	equipment.PUT("/:id", ctrl.UpdateEquipment, authMW.Auth, authMW.AuthorizeAny(authz.EquipmentUpdate))
	equipment.DELETE("/:id", ctrl.DeleteEquipment, authMW.Auth, authMW.AuthorizeAny(authz.EquipmentDelete))
}

package routes

import (
	"equipment-registry/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentTypeRouter(api *echo.Group, ctrl *controllers.EquipmentTypeController) {
	types := api.Group("/equipment/type")

	types.POST("", ctrl.CreateEquipmentType)
	types.GET("", ctrl.GetEquipmentTypes)
}

package routes

import (
	"equipment-registry/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runBrandRouter(api *echo.Group, ctrl *controllers.BrandController) {
	brands := api.Group("/equipment/brand")

	brands.POST("", ctrl.CreateBrand)
	brands.GET("", ctrl.GetBrands)
}

package controllers

import (
	"net/http"

	"equipment-registry/internal/dto"
	"equipment-registry/internal/services"
	apperrors "equipment-registry/pkg/errors"
	"equipment-registry/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BrandController struct {
	brandService services.BrandServiceInterface
	logger       *zap.Logger
}

func NewBrandController(
	service services.BrandServiceInterface,
	logger *zap.Logger,
) *BrandController {
	return &BrandController{
		brandService: service,
		logger:       logger,
	}
}

func (c *BrandController) CreateBrand(ctx echo.Context) error {
	var payload dto.CreateBrandDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateBrand: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateBrand: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.brandService.CreateBrand(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Бренд успешно создан", http.StatusCreated)
}

func (c *BrandController) GetBrands(ctx echo.Context) error {
	res, err := c.brandService.GetBrands(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetBrands: ошибка при получении списка брендов", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список брендов успешно получен", http.StatusOK)
}

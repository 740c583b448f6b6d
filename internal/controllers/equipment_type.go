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

type EquipmentTypeController struct {
	equipmentTypeService services.EquipmentTypeServiceInterface
	logger               *zap.Logger
}

func NewEquipmentTypeController(
	service services.EquipmentTypeServiceInterface,
	logger *zap.Logger,
) *EquipmentTypeController {
	return &EquipmentTypeController{
		equipmentTypeService: service,
		logger:               logger,
	}
}

func (c *EquipmentTypeController) CreateEquipmentType(ctx echo.Context) error {
	var payload dto.CreateEquipmentTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateEquipmentType: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateEquipmentType: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentTypeService.CreateEquipmentType(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Тип техники успешно создан", http.StatusCreated)
}

func (c *EquipmentTypeController) GetEquipmentTypes(ctx echo.Context) error {
	res, err := c.equipmentTypeService.GetEquipmentTypes(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetEquipmentTypes: ошибка при получении типов техники", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Типы техники успешно получены", http.StatusOK)
}

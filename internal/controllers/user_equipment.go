package controllers

import (
	"net/http"
	"strconv"

	"equipment-registry/internal/dto"
	"equipment-registry/internal/services"
	apperrors "equipment-registry/pkg/errors"
	"equipment-registry/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserEquipmentController struct {
	userEquipmentService services.UserEquipmentServiceInterface
	logger               *zap.Logger
}

func NewUserEquipmentController(
	service services.UserEquipmentServiceInterface,
	logger *zap.Logger,
) *UserEquipmentController {
	return &UserEquipmentController{
		userEquipmentService: service,
		logger:               logger,
	}
}

// CreateUserEquipment регистрирует технику за текущим пользователем.
// Идентификатор владельца берётся исключительно из контекста запроса.
func (c *UserEquipmentController) CreateUserEquipment(ctx echo.Context) error {
	ownerID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		c.logger.Error("CreateUserEquipment: UserID не найден в контексте", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	var payload dto.CreateUserEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateUserEquipment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateUserEquipment: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.userEquipmentService.CreateUserEquipment(ctx.Request().Context(), ownerID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Техника успешно зарегистрирована", http.StatusCreated)
}

func (c *UserEquipmentController) GetAllUserEquipments(ctx echo.Context) error {
	ownerID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetAllUserEquipments: UserID не найден в контексте", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	res, err := c.userEquipmentService.GetAllUserEquipments(ctx.Request().Context(), ownerID)
	if err != nil {
		c.logger.Error("GetAllUserEquipments: ошибка при получении регистраций",
			zap.Uint64("ownerID", ownerID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Регистрации техники успешно получены", http.StatusOK)
}

func (c *UserEquipmentController) DeleteUserEquipment(ctx echo.Context) error {
	ownerID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		c.logger.Error("DeleteUserEquipment: UserID не найден в контексте", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	equipmentID, err := strconv.ParseUint(ctx.Param("equipmentId"), 10, 64)
	if err != nil {
		c.logger.Error("DeleteUserEquipment: неверный формат ID техники",
			zap.String("equipmentId", ctx.Param("equipmentId")), zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID техники", err,
				map[string]interface{}{"param": ctx.Param("equipmentId")}),
			c.logger)
	}

	deleted, err := c.userEquipmentService.DeleteUserEquipment(ctx.Request().Context(), ownerID, equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res := dto.DeleteUserEquipmentResultDTO{Deleted: deleted}
	return utils.SuccessResponse(ctx, res, "Удаление регистраций выполнено", http.StatusOK)
}

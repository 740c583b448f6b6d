package controllers

import (
	"net/http"

	"equipment-registry/internal/services"
	"equipment-registry/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PermissionController struct {
	authPermissionService services.AuthPermissionServiceInterface
	logger                *zap.Logger
}

func NewPermissionController(
	service services.AuthPermissionServiceInterface,
	logger *zap.Logger,
) *PermissionController {
	return &PermissionController{
		authPermissionService: service,
		logger:                logger,
	}
}

// GetPermissions отдаёт справочник привилегий для административных инструментов.
func (c *PermissionController) GetPermissions(ctx echo.Context) error {
	res, err := c.authPermissionService.GetPermissions(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetPermissions: ошибка при получении привилегий", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Привилегии успешно получены", http.StatusOK)
}

package middleware

import (
	"context"
	"strings"

	"equipment-registry/pkg/contextkeys"
	apperrors "equipment-registry/pkg/errors"
	"equipment-registry/pkg/service"
	"equipment-registry/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Superuser обходит любые проверки привилегий.
const Superuser = "superuser"

// PermissionProvider отдаёт список имён привилегий для роли.
type PermissionProvider interface {
	GetRolePermissionsNames(ctx context.Context, roleID uint64) ([]string, error)
}

type AuthMiddleware struct {
	jwtService  service.JWTService
	permissions PermissionProvider
	logger      *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, permissions PermissionProvider, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtSvc,
		permissions: permissions,
		logger:      logger,
	}
}

// Auth проверяет Bearer-токен и кладёт UserID и RoleID в контекст запроса.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		// refresh-токен не даёт доступа к защищённым маршрутам
		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: Попытка доступа с refresh токеном")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.RoleIDKey, claims.RoleID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// AuthorizeAny пропускает запрос, если роль пользователя имеет хотя бы одну
// из перечисленных привилегий (или является суперпользователем).
func (m *AuthMiddleware) AuthorizeAny(requiredPermissions ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			roleID, err := utils.GetRoleIDFromCtx(ctx)
			if err != nil {
				m.logger.Warn("AuthorizeAny: RoleID не найден в контексте")
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}

			names, err := m.permissions.GetRolePermissionsNames(ctx, roleID)
			if err != nil {
				m.logger.Error("AuthorizeAny: не удалось получить привилегии роли",
					zap.Uint64("roleID", roleID), zap.Error(err))
				return utils.ErrorResponse(c, apperrors.ErrInternalServer, m.logger)
			}

			granted := make(map[string]bool, len(names))
			for _, name := range names {
				granted[name] = true
			}

			if granted[Superuser] {
				return next(c)
			}

			for _, required := range requiredPermissions {
				if granted[required] {
					return next(c)
				}
			}

			m.logger.Warn("AuthorizeAny: доступ запрещён",
				zap.Uint64("roleID", roleID),
				zap.Strings("required", requiredPermissions))
			return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
		}
	}
}

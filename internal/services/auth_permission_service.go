package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"equipment-registry/internal/entities"
	"equipment-registry/internal/repositories"
	apperrors "equipment-registry/pkg/errors"

	"go.uber.org/zap"
)

type AuthPermissionServiceInterface interface {
	GetPermissions(ctx context.Context) ([]entities.Permission, error)
	GetRolePermissionsNames(ctx context.Context, roleID uint64) ([]string, error)
}

type AuthPermissionService struct {
	permissionRepo repositories.PermissionRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	logger         *zap.Logger
	cacheTTL       time.Duration
}

func NewAuthPermissionService(
	permissionRepo repositories.PermissionRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) AuthPermissionServiceInterface {
	return &AuthPermissionService{
		permissionRepo: permissionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		cacheTTL:       cacheTTL,
	}
}

func rolePermissionsCacheKey(roleID uint64) string {
	return fmt.Sprintf("auth:permissions:role:%d", roleID)
}

// GetPermissions отдаёт полный справочник привилегий. Используется
// административным API, кеш здесь не нужен.
func (s *AuthPermissionService) GetPermissions(ctx context.Context) ([]entities.Permission, error) {
	return s.permissionRepo.GetPermissions(ctx)
}

func (s *AuthPermissionService) GetRolePermissionsNames(ctx context.Context, roleID uint64) ([]string, error) {
	cacheKey := rolePermissionsCacheKey(roleID)
	var permissions []string

	// Сначала кеш
	cachedJSON, errGet := s.cacheRepo.Get(ctx, cacheKey)
	if errGet == nil {
		if err := json.Unmarshal([]byte(cachedJSON), &permissions); err == nil {
			return permissions, nil
		}
		s.logger.Warn("AuthPermissionService: повреждённое значение в кеше",
			zap.String("key", cacheKey), zap.Uint64("roleID", roleID))
	}

	// Кеш пуст или повреждён - идём в БД
	permissions, errDB := s.permissionRepo.GetPermissionsNamesByRoleID(ctx, roleID)
	if errDB != nil {
		s.logger.Error("AuthPermissionService: не удалось получить привилегии роли из БД",
			zap.Uint64("roleID", roleID), zap.Error(errDB))
		return nil, apperrors.ErrInternalServer
	}

	if len(permissions) > 0 {
		permissionsJSON, errMarshal := json.Marshal(permissions)
		if errMarshal == nil {
			if errSet := s.cacheRepo.Set(ctx, cacheKey, string(permissionsJSON), s.cacheTTL); errSet != nil {
				s.logger.Warn("AuthPermissionService: не удалось закешировать привилегии роли",
					zap.Uint64("roleID", roleID), zap.Error(errSet))
			}
		}
	}

	return permissions, nil
}

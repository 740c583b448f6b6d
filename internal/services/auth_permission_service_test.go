package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"equipment-registry/internal/entities"
	apperrors "equipment-registry/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePermissionRepository struct {
	names   []string
	err     error
	dbCalls int
}

func (f *fakePermissionRepository) GetPermissions(ctx context.Context) ([]entities.Permission, error) {
	return nil, nil
}

func (f *fakePermissionRepository) GetPermissionsNamesByRoleID(ctx context.Context, roleID uint64) ([]string, error) {
	f.dbCalls++
	return f.names, f.err
}

type memoryCacheRepository struct {
	values map[string]string
}

func newMemoryCacheRepository() *memoryCacheRepository {
	return &memoryCacheRepository{values: map[string]string{}}
}

func (m *memoryCacheRepository) Get(ctx context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return value, nil
}

func (m *memoryCacheRepository) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.values[key] = value
	return nil
}

func TestGetRolePermissionsNames_CachesDatabaseResult(t *testing.T) {
	repo := &fakePermissionRepository{names: []string{"equipment:view", "uploads:create"}}
	cache := newMemoryCacheRepository()
	svc := NewAuthPermissionService(repo, cache, zap.NewNop(), time.Minute)

	names, err := svc.GetRolePermissionsNames(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"equipment:view", "uploads:create"}, names)
	assert.Equal(t, 1, repo.dbCalls)

	// Второй вызов обслуживается кешем.
	names, err = svc.GetRolePermissionsNames(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"equipment:view", "uploads:create"}, names)
	assert.Equal(t, 1, repo.dbCalls)
}

func TestGetRolePermissionsNames_CorruptCacheFallsBackToDatabase(t *testing.T) {
	repo := &fakePermissionRepository{names: []string{"equipment:view"}}
	cache := newMemoryCacheRepository()
	cache.values["auth:permissions:role:7"] = "{не json"
	svc := NewAuthPermissionService(repo, cache, zap.NewNop(), time.Minute)

	names, err := svc.GetRolePermissionsNames(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"equipment:view"}, names)
	assert.Equal(t, 1, repo.dbCalls)
}

func TestGetRolePermissionsNames_DatabaseErrorIsInternal(t *testing.T) {
	repo := &fakePermissionRepository{err: errors.New("connection refused")}
	svc := NewAuthPermissionService(repo, newMemoryCacheRepository(), zap.NewNop(), time.Minute)

	_, err := svc.GetRolePermissionsNames(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInternalServer))
}

package repositories

import (
	"context"
	"errors"
	"testing"

	"equipment-registry/internal/dto"
	apperrors "equipment-registry/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentRepository_Integration_CRUD(t *testing.T) {
	require.NotNil(t, testPool, "testPool не инициализирован")
	cleanupTables(t, testPool)
	brandID, typeID, _ := seedCatalog(t, testPool)
	repo := NewEquipmentRepository(testPool)

	created, err := repo.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:            "Harvester",
		BrandID:         brandID,
		EquipmentTypeID: typeID,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.ID > 0)
	assert.NotEmpty(t, created.CreatedAt)

	found, err := repo.FindEquipment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harvester", found.Name)
	assert.Equal(t, brandID, found.BrandID)

	list, err := repo.GetEquipments(context.Background())
	require.NoError(t, err)
	// seedCatalog уже создал одну запись каталога.
	assert.Len(t, list, 2)

	updated, err := repo.UpdateEquipment(context.Background(), created.ID, dto.UpdateEquipmentDTO{
		Name:            "Harvester XL",
		BrandID:         brandID,
		EquipmentTypeID: typeID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Harvester XL", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	deleted, err := repo.DeleteEquipment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harvester XL", deleted.Name)

	_, err = repo.FindEquipment(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestEquipmentRepository_Integration_UpdateTwiceYieldsSameRow(t *testing.T) {
	cleanupTables(t, testPool)
	brandID, typeID, equipmentID := seedCatalog(t, testPool)
	repo := NewEquipmentRepository(testPool)

	payload := dto.UpdateEquipmentDTO{
		Name:            "Tiller Pro",
		BrandID:         brandID,
		EquipmentTypeID: typeID,
	}

	first, err := repo.UpdateEquipment(context.Background(), equipmentID, payload)
	require.NoError(t, err)

	second, err := repo.UpdateEquipment(context.Background(), equipmentID, payload)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.BrandID, second.BrandID)
	assert.Equal(t, first.EquipmentTypeID, second.EquipmentTypeID)
}

func TestEquipmentRepository_Integration_NotFound(t *testing.T) {
	cleanupTables(t, testPool)
	brandID, typeID, _ := seedCatalog(t, testPool)
	repo := NewEquipmentRepository(testPool)

	_, err := repo.FindEquipment(context.Background(), 9999)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, err = repo.UpdateEquipment(context.Background(), 9999, dto.UpdateEquipmentDTO{
		Name:            "Ghost",
		BrandID:         brandID,
		EquipmentTypeID: typeID,
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, err = repo.DeleteEquipment(context.Background(), 9999)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

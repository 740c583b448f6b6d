package services

import (
	"context"
	"testing"

	"equipment-registry/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEquipmentRepository struct {
	equipments []dto.EquipmentDTO
}

func (f *fakeEquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	return nil, nil
}

func (f *fakeEquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	return nil, nil
}

func (f *fakeEquipmentRepository) GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error) {
	return f.equipments, nil
}

func (f *fakeEquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	return nil, nil
}

func (f *fakeEquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	return nil, nil
}

type fakeBrandRepository struct {
	brands []dto.BrandDTO
}

func (f *fakeBrandRepository) CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error) {
	return nil, nil
}

func (f *fakeBrandRepository) GetBrands(ctx context.Context) ([]dto.BrandDTO, error) {
	return f.brands, nil
}

type fakeEquipmentTypeRepository struct {
	types []dto.EquipmentTypeDTO
}

func (f *fakeEquipmentTypeRepository) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	return nil, nil
}

func (f *fakeEquipmentTypeRepository) GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error) {
	return f.types, nil
}

func TestExportCatalog_BuildsSheetWithBrandAndTypeNames(t *testing.T) {
	svc := NewEquipmentExportService(
		&fakeEquipmentRepository{equipments: []dto.EquipmentDTO{
			{ID: 1, Name: "Tiller", BrandID: 10, EquipmentTypeID: 20, CreatedAt: "2026-01-15, 10:00:00"},
			{ID: 2, Name: "Harvester", BrandID: 11, EquipmentTypeID: 20, CreatedAt: "2026-02-01, 12:30:00"},
		}},
		&fakeBrandRepository{brands: []dto.BrandDTO{
			{ID: 10, Name: "Acme"},
			{ID: 11, Name: "Mahindra"},
		}},
		&fakeEquipmentTypeRepository{types: []dto.EquipmentTypeDTO{
			{ID: 20, Type: "Трактор"},
		}},
		zap.NewNop(),
	)

	f, err := svc.ExportCatalog(context.Background())
	require.NoError(t, err)
	require.NotNil(t, f)

	sheet := "Каталог техники"
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Наименование", rows[0][1])
	assert.Equal(t, []string{"1", "Tiller", "Acme", "Трактор", "2026-01-15, 10:00:00"}, rows[1])
	assert.Equal(t, "Mahindra", rows[2][2])
}

func TestExportCatalog_EmptyCatalog(t *testing.T) {
	svc := NewEquipmentExportService(
		&fakeEquipmentRepository{},
		&fakeBrandRepository{},
		&fakeEquipmentTypeRepository{},
		zap.NewNop(),
	)

	f, err := svc.ExportCatalog(context.Background())
	require.NoError(t, err)

	rows, err := f.GetRows("Каталог техники")
	require.NoError(t, err)
	require.Len(t, rows, 1, "остаётся только строка заголовков")
}

package services

import (
	"context"

	"equipment-registry/internal/repositories"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var catalogExportHeaders = []interface{}{"ID", "Наименование", "Бренд", "Тип техники", "Создано"}

type EquipmentExportServiceInterface interface {
	ExportCatalog(ctx context.Context) (*excelize.File, error)
}

// EquipmentExportService собирает каталог техники в XLSX-файл.
type EquipmentExportService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	brandRepo     repositories.BrandRepositoryInterface
	typeRepo      repositories.EquipmentTypeRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentExportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	brandRepo repositories.BrandRepositoryInterface,
	typeRepo repositories.EquipmentTypeRepositoryInterface,
	logger *zap.Logger,
) EquipmentExportServiceInterface {
	return &EquipmentExportService{
		equipmentRepo: equipmentRepo,
		brandRepo:     brandRepo,
		typeRepo:      typeRepo,
		logger:        logger,
	}
}

func (s *EquipmentExportService) ExportCatalog(ctx context.Context) (*excelize.File, error) {
	equipments, err := s.equipmentRepo.GetEquipments(ctx)
	if err != nil {
		return nil, err
	}

	brands, err := s.brandRepo.GetBrands(ctx)
	if err != nil {
		return nil, err
	}
	brandNames := make(map[uint64]string, len(brands))
	for _, brand := range brands {
		brandNames[brand.ID] = brand.Name
	}

	types, err := s.typeRepo.GetEquipmentTypes(ctx)
	if err != nil {
		return nil, err
	}
	typeNames := make(map[uint64]string, len(types))
	for _, equipmentType := range types {
		typeNames[equipmentType.ID] = equipmentType.Type
	}

	f := excelize.NewFile()
	sheet := "Каталог техники"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &catalogExportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "E1", style)

	for i, equipment := range equipments {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			equipment.ID,
			equipment.Name,
			brandNames[equipment.BrandID],
			typeNames[equipment.EquipmentTypeID],
			equipment.CreatedAt,
		}
		f.SetSheetRow(sheet, cell, &row)
	}

	f.SetColWidth(sheet, "B", "B", 35)
	f.SetColWidth(sheet, "C", "D", 25)
	f.SetColWidth(sheet, "E", "E", 22)

	return f, nil
}

package services

import (
	"context"

	"equipment-registry/internal/dto"
	"equipment-registry/internal/repositories"

	"go.uber.org/zap"
)

type EquipmentTypeServiceInterface interface {
	CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error)
}

type EquipmentTypeService struct {
	equipmentTypeRepository repositories.EquipmentTypeRepositoryInterface
	logger                  *zap.Logger
}

func NewEquipmentTypeService(
	equipmentTypeRepository repositories.EquipmentTypeRepositoryInterface,
	logger *zap.Logger,
) EquipmentTypeServiceInterface {
	return &EquipmentTypeService{
		equipmentTypeRepository: equipmentTypeRepository,
		logger:                  logger,
	}
}

func (s *EquipmentTypeService) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	return s.equipmentTypeRepository.CreateEquipmentType(ctx, payload)
}

func (s *EquipmentTypeService) GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error) {
	return s.equipmentTypeRepository.GetEquipmentTypes(ctx)
}

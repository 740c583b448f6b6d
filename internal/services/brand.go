package services

import (
	"context"

	"equipment-registry/internal/dto"
	"equipment-registry/internal/repositories"

	"go.uber.org/zap"
)

type BrandServiceInterface interface {
	CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error)
	GetBrands(ctx context.Context) ([]dto.BrandDTO, error)
}

type BrandService struct {
	brandRepository repositories.BrandRepositoryInterface
	logger          *zap.Logger
}

func NewBrandService(
	brandRepository repositories.BrandRepositoryInterface,
	logger *zap.Logger,
) BrandServiceInterface {
	return &BrandService{
		brandRepository: brandRepository,
		logger:          logger,
	}
}

func (s *BrandService) CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error) {
	return s.brandRepository.CreateBrand(ctx, payload)
}

func (s *BrandService) GetBrands(ctx context.Context) ([]dto.BrandDTO, error) {
	return s.brandRepository.GetBrands(ctx)
}

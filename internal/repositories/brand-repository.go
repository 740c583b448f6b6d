package repositories

import (
	"context"

	"equipment-registry/internal/dto"

	"github.com/jackc/pgx/v5/pgxpool"
)

const brandTable = "brand"

type BrandRepositoryInterface interface {
	CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error)
	GetBrands(ctx context.Context) ([]dto.BrandDTO, error)
}

type BrandRepository struct {
	storage *pgxpool.Pool
}

func NewBrandRepository(storage *pgxpool.Pool) BrandRepositoryInterface {
	return &BrandRepository{
		storage: storage,
	}
}

func (r *BrandRepository) CreateBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error) {
	query := `
		INSERT INTO ` + brandTable + ` (name)
		VALUES ($1)
		RETURNING id, name
	`

	var brand dto.BrandDTO
	err := r.storage.QueryRow(ctx, query, payload.Name).Scan(&brand.ID, &brand.Name)
	if err != nil {
		return nil, translateError(err)
	}

	return &brand, nil
}

func (r *BrandRepository) GetBrands(ctx context.Context) ([]dto.BrandDTO, error) {
	query := `SELECT id, name FROM ` + brandTable + ` ORDER BY id`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	brands := make([]dto.BrandDTO, 0)
	for rows.Next() {
		var brand dto.BrandDTO
		if err := rows.Scan(&brand.ID, &brand.Name); err != nil {
			return nil, translateError(err)
		}
		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	return brands, nil
}

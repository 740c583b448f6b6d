package repositories

import (
	"context"

	"equipment-registry/internal/dto"

	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentTypeTable = "equipment_type"

type EquipmentTypeRepositoryInterface interface {
	CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error)
}

type EquipmentTypeRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentTypeRepository(storage *pgxpool.Pool) EquipmentTypeRepositoryInterface {
	return &EquipmentTypeRepository{
		storage: storage,
	}
}

func (r *EquipmentTypeRepository) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	query := `
		INSERT INTO ` + equipmentTypeTable + ` (type)
		VALUES ($1)
		RETURNING id, type
	`

	var equipmentType dto.EquipmentTypeDTO
	err := r.storage.QueryRow(ctx, query, payload.Type).Scan(&equipmentType.ID, &equipmentType.Type)
	if err != nil {
		return nil, translateError(err)
	}

	return &equipmentType, nil
}

func (r *EquipmentTypeRepository) GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error) {
	query := `SELECT id, type FROM ` + equipmentTypeTable + ` ORDER BY id`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	equipmentTypes := make([]dto.EquipmentTypeDTO, 0)
	for rows.Next() {
		var equipmentType dto.EquipmentTypeDTO
		if err := rows.Scan(&equipmentType.ID, &equipmentType.Type); err != nil {
			return nil, translateError(err)
		}
		equipmentTypes = append(equipmentTypes, equipmentType)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	return equipmentTypes, nil
}

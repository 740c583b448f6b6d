package repositories

import (
	"context"
	"time"

	"equipment-registry/internal/dto"

	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentTable = "equipment"
const equipmentFields = "id, name, brand_id, equipment_type_id, created_at, updated_at"
const timeLayout = "2006-01-02, 15:04:05"

type EquipmentRepositoryInterface interface {
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

func scanEquipmentRow(row interface {
	Scan(dest ...interface{}) error
}) (*dto.EquipmentDTO, error) {
	var equipment dto.EquipmentDTO
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&equipment.ID,
		&equipment.Name,
		&equipment.BrandID,
		&equipment.EquipmentTypeID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	equipment.CreatedAt = createdAt.Format(timeLayout)
	equipment.UpdatedAt = updatedAt.Format(timeLayout)
	return &equipment, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	query := `
		INSERT INTO ` + equipmentTable + ` (name, brand_id, equipment_type_id)
		VALUES ($1, $2, $3)
		RETURNING ` + equipmentFields

	equipment, err := scanEquipmentRow(r.storage.QueryRow(ctx, query,
		payload.Name,
		payload.BrandID,
		payload.EquipmentTypeID,
	))
	if err != nil {
		return nil, translateError(err)
	}

	return equipment, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	query := `SELECT ` + equipmentFields + ` FROM ` + equipmentTable + ` WHERE id = $1`

	equipment, err := scanEquipmentRow(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}

	return equipment, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error) {
	query := `SELECT ` + equipmentFields + ` FROM ` + equipmentTable + ` ORDER BY id`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	equipments := make([]dto.EquipmentDTO, 0)
	for rows.Next() {
		equipment, err := scanEquipmentRow(rows)
		if err != nil {
			return nil, translateError(err)
		}
		equipments = append(equipments, *equipment)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	return equipments, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	query := `
		UPDATE ` + equipmentTable + `
		SET name = $1, brand_id = $2, equipment_type_id = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING ` + equipmentFields

	equipment, err := scanEquipmentRow(r.storage.QueryRow(ctx, query,
		payload.Name,
		payload.BrandID,
		payload.EquipmentTypeID,
		id,
	))
	if err != nil {
		return nil, translateError(err)
	}

	return equipment, nil
}

// DeleteEquipment возвращает значения удалённой строки для подтверждения.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	query := `DELETE FROM ` + equipmentTable + ` WHERE id = $1 RETURNING ` + equipmentFields

	equipment, err := scanEquipmentRow(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}

	return equipment, nil
}

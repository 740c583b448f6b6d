package repositories

import (
	"context"

	"equipment-registry/internal/dto"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userEquipmentTable = "user_equipment"
const userEquipmentFields = "id, user_id, equipment_id, equipment_reg_number, equipment_reg_year, equipment_reg_location, state, district, equipment_details, equipment_image"

type UserEquipmentRepositoryInterface interface {
	CreateUserEquipment(ctx context.Context, payload dto.CreateUserEquipmentDTO) (*dto.UserEquipmentDTO, error)
	GetAllUserEquipments(ctx context.Context, userID uint64) ([]dto.EnrichedUserEquipmentDTO, error)
	DeleteUserEquipment(ctx context.Context, userID uint64, equipmentID uint64) (int64, error)
}

type UserEquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewUserEquipmentRepository(storage *pgxpool.Pool) UserEquipmentRepositoryInterface {
	return &UserEquipmentRepository{
		storage: storage,
	}
}

func (r *UserEquipmentRepository) CreateUserEquipment(ctx context.Context, payload dto.CreateUserEquipmentDTO) (*dto.UserEquipmentDTO, error) {
	query := `
		INSERT INTO ` + userEquipmentTable + `
			(user_id, equipment_id, equipment_reg_number, equipment_reg_year,
			 equipment_reg_location, state, district, equipment_details, equipment_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userEquipmentFields

	var row dto.UserEquipmentDTO
	err := r.storage.QueryRow(ctx, query,
		payload.UserID,
		payload.EquipmentID,
		payload.EquipmentRegNumber,
		payload.EquipmentRegYear,
		payload.EquipmentRegLocation,
		payload.State,
		payload.District,
		payload.EquipmentDetails,
		payload.EquipmentImage,
	).Scan(
		&row.ID,
		&row.UserID,
		&row.EquipmentID,
		&row.EquipmentRegNumber,
		&row.EquipmentRegYear,
		&row.EquipmentRegLocation,
		&row.State,
		&row.District,
		&row.EquipmentDetails,
		&row.EquipmentImage,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &row, nil
}

// GetAllUserEquipments отдаёт регистрации пользователя, дополненные именем
// техники и именем бренда. INNER JOIN по обеим связям: регистрация, чья
// техника или бренд удалены из каталога, в результат не попадает.
func (r *UserEquipmentRepository) GetAllUserEquipments(ctx context.Context, userID uint64) ([]dto.EnrichedUserEquipmentDTO, error) {
	builder := sq.Select(
		"ue.id", "ue.user_id", "ue.equipment_id",
		"ue.equipment_reg_number", "ue.equipment_reg_year", "ue.equipment_reg_location",
		"ue.state", "ue.district", "ue.equipment_details", "ue.equipment_image",
		"e.name", "b.name AS brand_name",
	).
		From(userEquipmentTable + " AS ue").
		Join("equipment AS e ON e.id = ue.equipment_id").
		Join("brand AS b ON b.id = e.brand_id").
		Where(sq.Eq{"ue.user_id": userID}).
		OrderBy("ue.id").
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	result := make([]dto.EnrichedUserEquipmentDTO, 0)
	for rows.Next() {
		var row dto.EnrichedUserEquipmentDTO
		err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.EquipmentID,
			&row.EquipmentRegNumber,
			&row.EquipmentRegYear,
			&row.EquipmentRegLocation,
			&row.State,
			&row.District,
			&row.EquipmentDetails,
			&row.EquipmentImage,
			&row.Name,
			&row.BrandName,
		)
		if err != nil {
			return nil, translateError(err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}

	return result, nil
}

// DeleteUserEquipment удаляет регистрации по паре (владелец, техника).
// Владелец приходит только из аутентифицированного контекста, поэтому чужие
// записи удалить нельзя. Ноль совпадений - не ошибка.
func (r *UserEquipmentRepository) DeleteUserEquipment(ctx context.Context, userID uint64, equipmentID uint64) (int64, error) {
	builder := sq.Delete(userEquipmentTable).
		Where(sq.Eq{"user_id": userID, "equipment_id": equipmentID}).
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return 0, translateError(err)
	}

	return result.RowsAffected(), nil
}

package dto

// CreateUserEquipmentDTO - входные данные регистрации техники.
// Поле user_id клиента игнорируется: владелец всегда берётся из
// аутентифицированного контекста запроса.
type CreateUserEquipmentDTO struct {
	UserID               uint64 `json:"user_id,omitempty"`
	EquipmentID          uint64 `json:"equipment_id" validate:"required,gt=0"`
	EquipmentRegNumber   string `json:"equipment_reg_number" validate:"required,reg_number"`
	EquipmentRegYear     string `json:"equipment_reg_year" validate:"required,reg_year"`
	EquipmentRegLocation string `json:"equipment_reg_location" validate:"required"`
	State                string `json:"state" validate:"required"`
	District             string `json:"district" validate:"required"`
	EquipmentDetails     string `json:"equipment_details" validate:"required"`
	EquipmentImage       string `json:"equipment_image" validate:"required"`
}

type UserEquipmentDTO struct {
	ID                   uint64 `json:"id"`
	UserID               uint64 `json:"user_id"`
	EquipmentID          uint64 `json:"equipment_id"`
	EquipmentRegNumber   string `json:"equipment_reg_number"`
	EquipmentRegYear     string `json:"equipment_reg_year"`
	EquipmentRegLocation string `json:"equipment_reg_location"`
	State                string `json:"state"`
	District             string `json:"district"`
	EquipmentDetails     string `json:"equipment_details"`
	EquipmentImage       string `json:"equipment_image"`
}

// EnrichedUserEquipmentDTO - регистрация, дополненная данными каталога.
// name - имя техники, brand_name - имя бренда: ключи различаются, чтобы
// не конфликтовать при соединении трёх таблиц.
type EnrichedUserEquipmentDTO struct {
	UserEquipmentDTO
	Name      string `json:"name"`
	BrandName string `json:"brand_name"`
}

// DeleteUserEquipmentResultDTO - результат удаления регистраций.
// Ноль удалённых строк - не ошибка.
type DeleteUserEquipmentResultDTO struct {
	Deleted int64 `json:"deleted"`
}

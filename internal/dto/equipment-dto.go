package dto

type CreateEquipmentDTO struct {
	Name            string `json:"name" validate:"required"`
	BrandID         uint64 `json:"brand_id" validate:"required,gt=0"`
	EquipmentTypeID uint64 `json:"equipment_type_id" validate:"required,gt=0"`
}

// UpdateEquipmentDTO - полная замена строки по первичному ключу,
// поэтому все поля обязательны, как и при создании.
type UpdateEquipmentDTO struct {
	Name            string `json:"name" validate:"required"`
	BrandID         uint64 `json:"brand_id" validate:"required,gt=0"`
	EquipmentTypeID uint64 `json:"equipment_type_id" validate:"required,gt=0"`
}

type EquipmentDTO struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	BrandID         uint64 `json:"brand_id"`
	EquipmentTypeID uint64 `json:"equipment_type_id"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type ShortEquipmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

package dto

type CreateEquipmentTypeDTO struct {
	Type string `json:"type" validate:"required"`
}

type EquipmentTypeDTO struct {
	ID   uint64 `json:"id"`
	Type string `json:"type"`
}

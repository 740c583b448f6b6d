package dto

type CreateBrandDTO struct {
	Name string `json:"name" validate:"required"`
}

type BrandDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

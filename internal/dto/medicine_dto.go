package dto

type MedicineResponse struct {
	Id      uint    `json:"id"`
	Name    string  `json:"name"`
	Generic string  `json:"generic"`
	Company string  `json:"company"`
	Price   float64 `json:"price"`
}

type BrandResponse struct {
	Id      uint    `json:"id"`
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Price   float64 `json:"price"`
}

type SearchResponse struct {
	Results []MedicineResponse `json:"results"`
}

type GenericResponse struct {
	Generic string          `json:"generic"`
	Brands  []BrandResponse `json:"brands"`
}

type GenericNotFoundResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

type CreateMedicineRequest struct {
	Name    string  `json:"name" validate:"required"`
	Generic string  `json:"generic" validate:"required"`
	Company string  `json:"company"`
	Price   float64 `json:"price" validate:"gte=0"`
}

type CreatedResponse struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=1"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SaveMedicineRequest struct {
	Username   string `json:"username" validate:"required"`
	MedicineId uint   `json:"medicine_id" validate:"required"`
}

type SaveMedicineResponse struct {
	Message string `json:"message"`
	// AlreadySaved is true when the medicine was on the list before this request.
	AlreadySaved bool `json:"already_saved"`
}

type SavedResponse struct {
	Saved []MedicineResponse `json:"saved"`
}

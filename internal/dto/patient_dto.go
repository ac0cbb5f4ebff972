package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePatientRequest struct {
	Name       string `json:"name"        validate:"required,min=1,max=200"`
	FatherName string `json:"father_name" validate:"max=200"`
	Age        int    `json:"age"         validate:"min=0,max=150"`
	Gender     string `json:"gender"      validate:"omitempty,oneof=male female other"`
	Phone      string `json:"phone"       validate:"max=30"`
	Address    string `json:"address"     validate:"max=500"`
}

type UpdatePatientRequest struct {
	Name       string `json:"name"        validate:"omitempty,min=1,max=200"`
	FatherName string `json:"father_name" validate:"max=200"`
	Age        *int   `json:"age"         validate:"omitempty,min=0,max=150"`
	Gender     string `json:"gender"      validate:"omitempty,oneof=male female other"`
	Phone      string `json:"phone"       validate:"max=30"`
	Address    string `json:"address"     validate:"max=500"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

type PatientFilter struct {
	Name  string `form:"name"`
	Phone string `form:"phone"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PatientResponse struct {
	ID             string `json:"id"`
	RegistrationNo int    `json:"registration_no"`
	Name           string `json:"name"`
	FatherName     string `json:"father_name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	CreatedAt      string `json:"created_at"`
}

type PatientListResponse struct {
	Data  []PatientResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

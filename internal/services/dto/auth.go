package dto

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=8"`
	UserType  string `json:"userType" validate:"required,usertype"`
	Phone     string `json:"phone" validate:"max=20"`
	Location  string `json:"location" validate:"max=100"`

	// Employer registration may create a company in the same request
	CompanyName string `json:"companyName" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

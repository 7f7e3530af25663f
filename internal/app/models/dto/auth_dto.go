package dto

// LoginRequest is the login payload; the e-mail doubles as the username.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane.doe.2019@alumni.rca.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"1800"` // seconds
}

// RegisterStudentRequest is the self-service student registration payload.
// Academic fields are mandatory for students.
type RegisterStudentRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	FullName     string  `json:"fullName" binding:"required"`
	Phone        *string `json:"phone,omitempty"`
	BloodGroup   *string `json:"bloodGroup,omitempty"`
	UniversityID string  `json:"universityId" binding:"required"`
	Department   string  `json:"department" binding:"required"`
	Series       string  `json:"series" binding:"required"`
}

// RegisterAlumniRequest is the self-service alumni registration payload.
type RegisterAlumniRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=8"`
	FullName        string  `json:"fullName" binding:"required"`
	Phone           *string `json:"phone,omitempty"`
	BloodGroup      *string `json:"bloodGroup,omitempty"`
	UniversityID    string  `json:"universityId"`
	Department      string  `json:"department"`
	Series          string  `json:"series" binding:"required"`
	IsEmployed      bool    `json:"isEmployed"`
	CurrentCompany  *string `json:"currentCompany,omitempty"`
	Designation     *string `json:"designation,omitempty"`
	WorkLocation    *string `json:"workLocation,omitempty"`
	LinkedinProfile *string `json:"linkedinProfile,omitempty"`
}

// ChangePasswordRequest updates the caller's own password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

package models

import (
	"time"
)

// User defines the authentication identity based on the 'users' table.
// Everything the association knows about the person lives in Profile.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"jane.doe.2019@alumni.rca.com"` // Unique login identity
	Password  string    `json:"-" db:"password"`                                         // Hashed password (excluded from JSON)
	Role      UserRole  `json:"role" db:"role" example:"alumni"`
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`

	Profile *Profile `json:"profile,omitempty"` // Relation, no db tag
}

// Profile defines the member details based on the 'profiles' table (1:1 with User).
// Academic fields default to empty strings rather than NULL; admin-created
// accounts carry blank placeholders until the member fills them in.
type Profile struct {
	ID         int64       `json:"id" db:"id"`
	UserID     int64       `json:"userId" db:"user_id"`
	FullName   string      `json:"fullName" db:"full_name" example:"Jane Doe"`
	Phone      *string     `json:"phone,omitempty" db:"phone"`
	BloodGroup *BloodGroup `json:"bloodGroup,omitempty" db:"blood_group" example:"A+"`
	Bio        *string     `json:"bio,omitempty" db:"bio"`
	AvatarURL  *string     `json:"avatarUrl,omitempty" db:"avatar_url"`

	// Academic info
	UniversityID string `json:"universityId" db:"university_id"` // ID card number
	Department   string `json:"department" db:"department"`
	Series       string `json:"series" db:"series" example:"2019"` // Graduation batch

	// Alumni-specific info (zero values for students)
	IsEmployed      bool    `json:"isEmployed" db:"is_employed"`
	CurrentCompany  *string `json:"currentCompany,omitempty" db:"current_company"`
	Designation     *string `json:"designation,omitempty" db:"designation"`
	WorkLocation    *string `json:"workLocation,omitempty" db:"work_location"`
	LinkedinProfile *string `json:"linkedinProfile,omitempty" db:"linkedin_profile"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

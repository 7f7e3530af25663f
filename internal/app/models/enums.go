package models

// UserRole defines the user role type
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAlumni  UserRole = "alumni"
	RoleStudent UserRole = "student"
	RolePending UserRole = "pending" // waiting for admin approval
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleAdmin, RoleAlumni, RoleStudent, RolePending:
		return true
	}
	return false
}

// BloodGroup is one of the eight ABO/Rh combinations, stored symbolically ("A+").
type BloodGroup string

const (
	BloodAPos  BloodGroup = "A+"
	BloodANeg  BloodGroup = "A-"
	BloodBPos  BloodGroup = "B+"
	BloodBNeg  BloodGroup = "B-"
	BloodOPos  BloodGroup = "O+"
	BloodONeg  BloodGroup = "O-"
	BloodABPos BloodGroup = "AB+"
	BloodABNeg BloodGroup = "AB-"
)

// bloodGroupAliases maps accepted input spellings (symbolic and internal-token)
// to the stored symbolic form.
var bloodGroupAliases = map[string]BloodGroup{
	"A+": BloodAPos, "A_POS": BloodAPos,
	"A-": BloodANeg, "A_NEG": BloodANeg,
	"B+": BloodBPos, "B_POS": BloodBPos,
	"B-": BloodBNeg, "B_NEG": BloodBNeg,
	"O+": BloodOPos, "O_POS": BloodOPos,
	"O-": BloodONeg, "O_NEG": BloodONeg,
	"AB+": BloodABPos, "AB_POS": BloodABPos,
	"AB-": BloodABNeg, "AB_NEG": BloodABNeg,
}

// ParseBloodGroup maps a raw spelling to a BloodGroup. Unknown or empty
// values return (nil, false); callers are expected to leave the field unset
// rather than fail.
func ParseBloodGroup(s string) (BloodGroup, bool) {
	bg, ok := bloodGroupAliases[s]
	return bg, ok
}

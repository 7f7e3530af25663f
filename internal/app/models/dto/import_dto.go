package dto

// ImportReport aggregates the outcome of one bulk alumni import. Row order
// in every list matches input order.
type ImportReport struct {
	Total                int                    `json:"total"`
	Success              int                    `json:"success"`
	Failed               int                    `json:"failed"`
	Errors               []ImportRowError       `json:"errors"`
	Created              []ImportedUser         `json:"created"`
	GeneratedCredentials []GeneratedCredentials `json:"generatedCredentials"`
}

// ImportRowError records a skipped row. Row indexes are 1-based data rows
// (the header row is not counted).
type ImportRowError struct {
	Row    int               `json:"row"`
	Reason string            `json:"reason"`
	Fields map[string]string `json:"fields,omitempty"` // Offending field snapshot
}

// ImportedUser summarizes a successfully created account
type ImportedUser struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Series   string `json:"series"`
}

// GeneratedCredentials reports auto-generated identity data for a row. The
// plaintext password is present only when it was generated; this report is
// the only place the admin can ever retrieve it.
type GeneratedCredentials struct {
	Row            int    `json:"row"`
	Email          string `json:"email"`
	FullName       string `json:"fullName"`
	EmailGenerated bool   `json:"emailGenerated"`
	Password       string `json:"password,omitempty"`
}

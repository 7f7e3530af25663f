package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/models/dto"
	"github.com/rcaa/rcaconnect/internal/pkg/auth"
	"github.com/rcaa/rcaconnect/internal/pkg/logger"
	"github.com/rcaa/rcaconnect/internal/pkg/tabular"
)

// importStore runs an import batch inside one transaction
type importStore interface {
	RunImport(ctx context.Context, fn func(ctx context.Context, batch AlumniBatch) error) error
}

// ImportService ingests tabular alumni files and creates one account per
// valid row. Rows are processed sequentially; each successful row is inserted
// before the next row's email lookup runs, so generated-address dedup sees
// everything earlier in the batch.
type ImportService struct {
	store  importStore
	domain string
}

// NewImportService creates an ImportService generating addresses under
// alumni.<domain>.
func NewImportService(store importStore, domain string) *ImportService {
	return &ImportService{store: store, domain: domain}
}

// Header aliases accepted on top of the canonical column names. Keys are
// matched after tabular normalization (lower-case, spaces to underscores).
var headerAliases = map[string][]string{
	"full_name":        {"full_name", "name"},
	"series":           {"series", "batch"},
	"university_id":    {"university_id", "student_id", "roll", "id_no"},
	"email":            {"email", "e_mail", "email_address"},
	"password":         {"password"},
	"phone":            {"phone", "mobile", "phone_number"},
	"blood_group":      {"blood_group", "blood"},
	"department":       {"department", "dept"},
	"is_employed":      {"is_employed", "employed"},
	"current_company":  {"current_company", "company"},
	"designation":      {"designation"},
	"work_location":    {"work_location", "location"},
	"linkedin_profile": {"linkedin_profile", "linkedin"},
}

func field(row map[string]string, name string) string {
	for _, alias := range headerAliases[name] {
		if v, ok := row[alias]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ImportFile decodes the uploaded file and imports its rows. Unsupported
// extensions fail before any row is touched.
func (s *ImportService) ImportFile(ctx context.Context, filename string, r io.Reader) (*dto.ImportReport, error) {
	table, err := tabular.Read(filename, r)
	if err != nil {
		return nil, err
	}
	return s.ImportRows(ctx, table.Rows)
}

// ImportRows creates one alumni account per valid row. Row-level failures
// (missing mandatory fields, duplicate e-mail) are recorded in the report and
// skip only that row; any other failure aborts the batch and rolls back
// every row.
func (s *ImportService) ImportRows(ctx context.Context, rows []map[string]string) (*dto.ImportReport, error) {
	report := &dto.ImportReport{Total: len(rows)}

	err := s.store.RunImport(ctx, func(ctx context.Context, batch AlumniBatch) error {
		for i, row := range rows {
			rowNum := i + 1
			if err := s.importRow(ctx, batch, rowNum, row, report); err != nil {
				return fmt.Errorf("row %d: %w", rowNum, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("total", report.Total).
		Int("success", report.Success).
		Int("failed", report.Failed).
		Msg("Alumni import finished")
	return report, nil
}

// importRow handles one row. A nil return with a recorded error means the
// row was skipped; a non-nil return is a batch-level failure.
func (s *ImportService) importRow(ctx context.Context, batch AlumniBatch, rowNum int, row map[string]string, report *dto.ImportReport) error {
	fullName := field(row, "full_name")
	series := field(row, "series")

	if fullName == "" || series == "" {
		missing := map[string]string{}
		if fullName == "" {
			missing["full_name"] = row["full_name"]
		}
		if series == "" {
			missing["series"] = row["series"]
		}
		report.Failed++
		report.Errors = append(report.Errors, dto.ImportRowError{
			Row:    rowNum,
			Reason: "full_name and series are mandatory",
			Fields: missing,
		})
		return nil
	}

	universityID := field(row, "university_id")

	email := field(row, "email")
	emailGenerated := false
	if email == "" {
		generated, err := s.generateEmail(ctx, batch, fullName, universityID, series)
		if err != nil {
			return err
		}
		email = generated
		emailGenerated = true
	} else {
		exists, err := batch.EmailExists(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			report.Failed++
			report.Errors = append(report.Errors, dto.ImportRowError{
				Row:    rowNum,
				Reason: "email already exists",
				Fields: map[string]string{"email": email},
			})
			return nil
		}
	}

	password := field(row, "password")
	passwordGenerated := false
	if password == "" {
		generated, err := randomPassword(12)
		if err != nil {
			return err
		}
		password = generated
		passwordGenerated = true
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Role:     models.RoleAlumni,
		IsActive: true,
	}

	bloodRaw := field(row, "blood_group")
	profile := &models.Profile{
		FullName:        fullName,
		Phone:           optional(field(row, "phone")),
		BloodGroup:      parseBloodGroupPtr(optional(bloodRaw)),
		UniversityID:    universityID,
		Department:      field(row, "department"),
		Series:          series,
		IsEmployed:      truthy(field(row, "is_employed")),
		CurrentCompany:  optional(field(row, "current_company")),
		Designation:     optional(field(row, "designation")),
		WorkLocation:    optional(field(row, "work_location")),
		LinkedinProfile: optional(field(row, "linkedin_profile")),
	}

	if err := batch.CreateUserWithProfile(ctx, user, profile); err != nil {
		return err
	}

	report.Success++
	report.Created = append(report.Created, dto.ImportedUser{
		Email:    email,
		FullName: fullName,
		Series:   series,
	})

	if emailGenerated || passwordGenerated {
		cred := dto.GeneratedCredentials{
			Row:            rowNum,
			Email:          email,
			FullName:       fullName,
			EmailGenerated: emailGenerated,
		}
		if passwordGenerated {
			// Plaintext on purpose: the report is the only place the admin
			// can ever retrieve a generated password.
			cred.Password = password
		}
		report.GeneratedCredentials = append(report.GeneratedCredentials, cred)
	}

	return nil
}

// generateEmail synthesizes base.series@alumni.<domain>, appending an
// incrementing counter while the address is taken. Each attempt queries the
// datastore, so rows inserted earlier in the same batch count as taken. After
// 100 attempts a random hex suffix guarantees termination.
func (s *ImportService) generateEmail(ctx context.Context, batch AlumniBatch, fullName, universityID, series string) (string, error) {
	base := emailBase(fullName, universityID)
	series = strings.ToLower(strings.TrimSpace(series))

	candidate := fmt.Sprintf("%s.%s@alumni.%s", base, series, s.domain)
	for attempt := 1; attempt <= 100; attempt++ {
		exists, err := batch.EmailExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s.%s.%d@alumni.%s", base, series, attempt, s.domain)
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%s.%s@alumni.%s", base, series, hex.EncodeToString(suffix), s.domain), nil
}

// emailBase derives the address base: the university id when present, else
// the first and last space-separated name tokens joined with a dot.
func emailBase(fullName, universityID string) string {
	if universityID != "" {
		return strings.ToLower(universityID)
	}
	tokens := strings.Fields(fullName)
	switch len(tokens) {
	case 0:
		return "alumni"
	case 1:
		return strings.ToLower(tokens[0])
	default:
		return strings.ToLower(tokens[0] + "." + tokens[len(tokens)-1])
	}
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomPassword returns n cryptographically random alphanumeric characters
func randomPassword(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[idx.Int64()]
	}
	return string(out), nil
}

// truthy parses the employment flag. Everything outside the known set is
// false.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "t", "y":
		return true
	}
	return false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

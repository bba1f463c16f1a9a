package identity

import (
	"context"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/tradecore/backend/internal/domain/shared"
	"github.com/tradecore/backend/internal/domain/shared/valueobject"
)

// CompanyStatus represents the status of a company
type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "active"
	CompanyStatusSuspended CompanyStatus = "suspended"
)

// IsValid checks if the company status is valid
func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusActive, CompanyStatusSuspended:
		return true
	}
	return false
}

var companyCodePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}$`)

// Company is the tenant aggregate. Every other aggregate in the system is
// scoped to exactly one company.
type Company struct {
	shared.BaseAggregateRoot
	Name     string
	Code     string
	Address  string
	Currency valueobject.Currency
	Status   CompanyStatus
}

// TableName returns the database table name
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company with an explicit code
func NewCompany(name, code, address string) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if !companyCodePattern.MatchString(code) {
		return nil, shared.NewDomainError("INVALID_COMPANY_CODE",
			"Company code must be 2-10 characters, start with a letter and contain only A-Z and digits")
	}

	company := &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Code:              code,
		Address:           strings.TrimSpace(address),
		Currency:          valueobject.DefaultCurrency,
		Status:            CompanyStatusActive,
	}

	company.AddDomainEvent(NewCompanyRegisteredEvent(company))

	return company, nil
}

// CodeExistsFunc reports whether a company code is already taken
type CodeExistsFunc func(ctx context.Context, code string) (bool, error)

// GenerateCompanyCode derives a code from the company name initials and probes
// for an unused variant by appending an increasing sequence number.
func GenerateCompanyCode(ctx context.Context, name string, exists CodeExistsFunc) (string, error) {
	prefix := codePrefixFromName(name)

	candidate := prefix
	for seq := 2; ; seq++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = prefix + strconv.Itoa(seq)
		if seq > 9999 {
			return "", shared.NewDomainError("CODE_SPACE_EXHAUSTED", "Unable to generate a unique company code")
		}
	}
}

// codePrefixFromName takes the initials of up to three words; names without
// usable letters fall back to a random two-letter prefix.
func codePrefixFromName(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
		if b.Len() >= 3 {
			break
		}
	}

	prefix := b.String()
	if len(prefix) < 2 {
		prefix = randomCodePrefix()
	}
	return prefix
}

func randomCodePrefix() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return string([]byte{letters[r.Intn(26)], letters[r.Intn(26)]})
}

// Rename changes the company name
func (c *Company) Rename(name string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAddress updates the company address
func (c *Company) SetAddress(address string) {
	c.Address = strings.TrimSpace(address)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetCurrency changes the company's reporting currency. The code must be a
// valid ISO 4217 currency.
func (c *Company) SetCurrency(code valueobject.Currency) error {
	code = valueobject.Currency(strings.ToUpper(strings.TrimSpace(string(code))))
	if err := valueobject.ValidateCurrency(code); err != nil {
		return shared.NewDomainError("INVALID_CURRENCY", err.Error())
	}

	c.Currency = code
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Suspend marks the company as suspended
func (c *Company) Suspend() error {
	if c.Status == CompanyStatusSuspended {
		return shared.ErrInvalidState
	}
	c.Status = CompanyStatusSuspended
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Activate restores a suspended company
func (c *Company) Activate() error {
	if c.Status == CompanyStatusActive {
		return shared.ErrInvalidState
	}
	c.Status = CompanyStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// IsActive returns true when the company can be operated on
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}

func validateCompanyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}

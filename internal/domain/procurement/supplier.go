package procurement

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// Supplier is a vendor the company procures from. Banking and registration
// details are validated on write; the IsConnected flag flips after OTP
// verification.
type Supplier struct {
	shared.CompanyAggregateRoot
	Name         string
	Email        string
	Phone        string
	TradeLicense string
	TRN          string
	IBAN         string
	SWIFT        string
	Address      string
	IsConnected  bool
	DocumentKey  string
}

// TableName returns the database table name
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a supplier with the minimum required fields
func NewSupplier(companyID uuid.UUID, name, email, phone string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_EMAIL", "Supplier email cannot be empty")
	}
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}

	supplier := &Supplier{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
		Email:                email,
		Phone:                strings.TrimSpace(phone),
	}

	supplier.AddDomainEvent(NewSupplierCreatedEvent(supplier))

	return supplier, nil
}

// SetRegistration sets the trade licence and TRN after validation
func (s *Supplier) SetRegistration(tradeLicense, trn string) error {
	if tradeLicense != "" {
		if err := ValidateTradeLicense(tradeLicense); err != nil {
			return err
		}
	}
	if trn != "" {
		if err := ValidateTRN(trn); err != nil {
			return err
		}
	}

	s.TradeLicense = strings.TrimSpace(tradeLicense)
	s.TRN = strings.TrimSpace(trn)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetBanking sets IBAN and SWIFT after validation
func (s *Supplier) SetBanking(iban, swift string) error {
	if iban != "" {
		if err := ValidateIBAN(iban); err != nil {
			return err
		}
	}
	if swift != "" {
		if err := ValidateSWIFT(swift); err != nil {
			return err
		}
	}

	s.IBAN = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(iban), " ", ""))
	s.SWIFT = strings.ToUpper(strings.TrimSpace(swift))
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetAddress updates the supplier address
func (s *Supplier) SetAddress(address string) {
	s.Address = strings.TrimSpace(address)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// AttachDocument stores the object storage key of the trade licence scan
func (s *Supplier) AttachDocument(storageKey string) {
	s.DocumentKey = storageKey
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// MarkConnected flips the connection flag after a successful OTP verification
func (s *Supplier) MarkConnected() {
	if s.IsConnected {
		return
	}
	s.IsConnected = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	s.AddDomainEvent(NewSupplierConnectedEvent(s))
}

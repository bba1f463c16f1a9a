package procurement

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// OTPValidity is how long a supplier verification code stays usable
const OTPValidity = 10 * time.Minute

const otpDigits = 6

// SupplierOTP is a single-use verification code sent to a supplier contact.
// Only the hash is stored; the plain code leaves the system exactly once, at
// generation time.
type SupplierOTP struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;index"`
	CodeHash   string    `gorm:"size:64;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	UsedAt     *time.Time
	CreatedAt  time.Time
}

// TableName returns the database table name
func (SupplierOTP) TableName() string {
	return "supplier_otps"
}

// GenerateSupplierOTP creates a new OTP and returns the aggregate together
// with the plain code for delivery.
func GenerateSupplierOTP(companyID, supplierID uuid.UUID) (*SupplierOTP, string, error) {
	code, err := randomDigits(otpDigits)
	if err != nil {
		return nil, "", shared.NewDomainError("OTP_GENERATION_FAILED", "Failed to generate verification code")
	}

	now := time.Now()
	otp := &SupplierOTP{
		ID:         uuid.New(),
		CompanyID:  companyID,
		SupplierID: supplierID,
		CodeHash:   hashOTP(code),
		ExpiresAt:  now.Add(OTPValidity),
		CreatedAt:  now,
	}
	return otp, code, nil
}

// Verify consumes the OTP. It fails when the code does not match, the OTP
// has expired, or it was already used. Success marks it used: an OTP verifies
// at most once.
func (o *SupplierOTP) Verify(code string, at time.Time) error {
	if o.UsedAt != nil {
		return shared.NewDomainError("OTP_ALREADY_USED", "Verification code has already been used")
	}
	if at.After(o.ExpiresAt) {
		return shared.NewDomainError("OTP_EXPIRED", "Verification code has expired")
	}

	expected := []byte(o.CodeHash)
	actual := []byte(hashOTP(code))
	if subtle.ConstantTimeCompare(expected, actual) != 1 {
		return shared.NewDomainError("OTP_MISMATCH", "Verification code is incorrect")
	}

	used := at
	o.UsedAt = &used
	return nil
}

// IsExpired reports whether the OTP has passed its validity window
func (o *SupplierOTP) IsExpired(at time.Time) bool {
	return at.After(o.ExpiresAt)
}

func hashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

func randomDigits(n int) (string, error) {
	max := big.NewInt(10)
	out := make([]byte, n)
	for i := range out {
		d, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = byte('0' + d.Int64())
	}
	return string(out), nil
}

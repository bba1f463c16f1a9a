package procurement

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/tradecore/backend/internal/domain/shared"
)

var (
	phonePattern        = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	tradeLicensePattern = regexp.MustCompile(`^[A-Za-z0-9-]{3,50}$`)
	trnPattern          = regexp.MustCompile(`^\d{15}$`)
	swiftPattern        = regexp.MustCompile(`^[A-Z0-9]{8}([A-Z0-9]{3})?$`)
	ibanCharsPattern    = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{11,30}$`)
)

// ValidatePhone checks an international phone number in loose E.164 form
func ValidatePhone(phone string) error {
	phone = strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if !phonePattern.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Phone number format is invalid")
	}
	return nil
}

// ValidateTradeLicense checks a trade licence number
func ValidateTradeLicense(license string) error {
	if !tradeLicensePattern.MatchString(strings.TrimSpace(license)) {
		return shared.NewDomainError("INVALID_TRADE_LICENSE", "Trade licence must be 3-50 alphanumeric characters or hyphens")
	}
	return nil
}

// ValidateTRN checks a 15-digit tax registration number
func ValidateTRN(trn string) error {
	if !trnPattern.MatchString(strings.TrimSpace(trn)) {
		return shared.NewDomainError("INVALID_TRN", "TRN must be exactly 15 digits")
	}
	return nil
}

// ValidateSWIFT checks a SWIFT/BIC code (8 or 11 characters)
func ValidateSWIFT(swift string) error {
	if !swiftPattern.MatchString(strings.ToUpper(strings.TrimSpace(swift))) {
		return shared.NewDomainError("INVALID_SWIFT", "SWIFT code must be 8 or 11 alphanumeric characters")
	}
	return nil
}

// ValidateIBAN checks IBAN shape and the ISO 7064 mod-97 checksum
func ValidateIBAN(iban string) error {
	iban = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(iban), " ", ""))
	if !ibanCharsPattern.MatchString(iban) {
		return shared.NewDomainError("INVALID_IBAN", "IBAN format is invalid")
	}

	// Move the country code and check digits to the end, then map letters to
	// numbers (A=10 .. Z=35) and take the whole thing mod 97.
	rearranged := iban[4:] + iban[:4]
	var digits strings.Builder
	for _, r := range rearranged {
		if r >= 'A' && r <= 'Z' {
			digits.WriteString(big.NewInt(int64(r - 'A' + 10)).String())
		} else {
			digits.WriteRune(r)
		}
	}

	n, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return shared.NewDomainError("INVALID_IBAN", "IBAN format is invalid")
	}
	if new(big.Int).Mod(n, big.NewInt(97)).Int64() != 1 {
		return shared.NewDomainError("INVALID_IBAN", "IBAN checksum failed")
	}
	return nil
}

package procurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+971501234567", "0501234567", "+442071838750"}
	for _, p := range valid {
		assert.NoError(t, ValidatePhone(p), "phone %q should pass", p)
	}

	invalid := []string{"", "12345", "abc", "+9715012345678901234"}
	for _, p := range invalid {
		assert.Error(t, ValidatePhone(p), "phone %q should fail", p)
	}
}

func TestValidateTradeLicense(t *testing.T) {
	assert.NoError(t, ValidateTradeLicense("CN-1234567"))
	assert.NoError(t, ValidateTradeLicense("ABC"))

	assert.Error(t, ValidateTradeLicense("AB"))
	assert.Error(t, ValidateTradeLicense("has space"))
	assert.Error(t, ValidateTradeLicense(""))
}

func TestValidateTRN(t *testing.T) {
	assert.NoError(t, ValidateTRN("123456789012345"))

	assert.Error(t, ValidateTRN("12345678901234"))
	assert.Error(t, ValidateTRN("1234567890123456"))
	assert.Error(t, ValidateTRN("12345678901234a"))
}

func TestValidateSWIFT(t *testing.T) {
	assert.NoError(t, ValidateSWIFT("EBILAEAD"))
	assert.NoError(t, ValidateSWIFT("EBILAEADXXX"))
	assert.NoError(t, ValidateSWIFT("ebilaead"))

	assert.Error(t, ValidateSWIFT("EBILAEA"))
	assert.Error(t, ValidateSWIFT("EBILAEADX"))
	assert.Error(t, ValidateSWIFT("EBIL-EAD"))
}

func TestValidateIBAN(t *testing.T) {
	// Well-known checksum-valid examples.
	assert.NoError(t, ValidateIBAN("GB82WEST12345698765432"))
	assert.NoError(t, ValidateIBAN("DE89370400440532013000"))
	assert.NoError(t, ValidateIBAN("gb82 west 1234 5698 7654 32"))

	t.Run("rejects bad checksum", func(t *testing.T) {
		assert.Error(t, ValidateIBAN("GB82WEST12345698765433"))
	})

	t.Run("rejects bad shape", func(t *testing.T) {
		assert.Error(t, ValidateIBAN(""))
		assert.Error(t, ValidateIBAN("1234"))
		assert.Error(t, ValidateIBAN("GBXXWEST12345698765432"))
	})
}

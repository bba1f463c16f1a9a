package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCapability(t *testing.T) {
	t.Run("accepts registered codename", func(t *testing.T) {
		c, err := ParseCapability("view_warehouse")
		require.NoError(t, err)
		assert.Equal(t, CapViewWarehouse, c)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		c, err := ParseCapability("  add_productcategory ")
		require.NoError(t, err)
		assert.Equal(t, CapAddProductCategory, c)
	})

	t.Run("rejects unknown codename", func(t *testing.T) {
		_, err := ParseCapability("delete_everything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "delete_everything")
	})

	t.Run("rejects empty codename", func(t *testing.T) {
		_, err := ParseCapability("")
		assert.Error(t, err)
	})
}

func TestAllCapabilities(t *testing.T) {
	caps := AllCapabilities()
	require.NotEmpty(t, caps)

	for _, c := range caps {
		assert.True(t, c.IsRegistered(), "capability %s should be registered", c)
	}

	// The registry is closed: nothing outside the declared table is valid.
	assert.False(t, Capability("view_madeup").IsRegistered())
}

package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("fills empty fields", func(t *testing.T) {
		l := Lead{LastName: "Smith", CompanyName: "IBEW Local 58"}
		l.ApplyDefaults()

		assert.Equal(t, DefaultSourcePlatform, l.SourcePlatform)
		assert.Equal(t, DefaultStatus, l.Status)
	})

	t.Run("keeps provided values", func(t *testing.T) {
		l := Lead{
			LastName:       "Smith",
			CompanyName:    "IBEW Local 58",
			SourcePlatform: "Manual Entry",
			Status:         "Contacted",
		}
		l.ApplyDefaults()

		assert.Equal(t, "Manual Entry", l.SourcePlatform)
		assert.Equal(t, "Contacted", l.Status)
	})
}

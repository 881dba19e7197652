package client

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "   ", "name is required"},
		{"too short", " A ", "Client name must be at least 2 characters."},
		{"too long", strings.Repeat("x", 256), "name must not exceed 255 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateClientRequest{Name: tt.input}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, req.Validate(), &verrs)
			assert.Equal(t, tt.wantMsg, verrs.ToMap()["name"])
		})
	}

	t.Run("trims name", func(t *testing.T) {
		req := CreateClientRequest{Name: "  Acme Corp "}
		require.NoError(t, req.Validate())
		assert.Equal(t, "Acme Corp", req.Name)
	})
}

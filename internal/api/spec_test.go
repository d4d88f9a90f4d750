package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    ID
		wantErr bool
	}{
		{"positive", "42", 42, false},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := BindPathID("id", tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenAPISpecEmbedded(t *testing.T) {
	t.Parallel()

	assert.Contains(t, string(OpenAPISpec), "openapi: 3.0.3")
	assert.Contains(t, string(OpenAPISpec), "/api/orders/{userId}")
}

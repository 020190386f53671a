package otp_test

import (
	"testing"

	"github.com/jhoicas/Mercado-api/pkg/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SeisDigitos(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := otp.Generate()
		require.NoError(t, err)
		assert.Len(t, code, otp.Length)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "el código debe ser numérico: %q", code)
		}
	}
}

package domain_test

import (
	"testing"
	"time"

	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStrongPassword(t *testing.T) {
	cases := []struct {
		name string
		pw   string
		want bool
	}{
		{"completa", "Abcdef1!", true},
		{"muy corta", "Ab1!", false},
		{"sin mayuscula", "abcdef1!", false},
		{"sin minuscula", "ABCDEF1!", false},
		{"sin numero", "Abcdefg!", false},
		{"sin simbolo", "Abcdefg1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.StrongPassword(tc.pw))
		})
	}
}

func TestPasswordReusedError_MensajeConAntiguedad(t *testing.T) {
	err := &domain.PasswordReusedError{Ago: 48 * time.Hour}
	assert.Contains(t, err.Error(), "2 día(s)")

	err = &domain.PasswordReusedError{Ago: 3 * time.Hour}
	assert.Contains(t, err.Error(), "3 hora(s)")

	err = &domain.PasswordReusedError{Ago: 30 * time.Second}
	assert.Contains(t, err.Error(), "minuto")
}

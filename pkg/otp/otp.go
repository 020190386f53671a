package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Length dígitos del código de verificación.
const Length = 6

// Generate produce un código numérico de 6 dígitos con crypto/rand.
// Se devuelve como string para conservar los ceros a la izquierda.
func Generate() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < Length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generar otp: %w", err)
	}
	return fmt.Sprintf("%0*d", Length, n), nil
}

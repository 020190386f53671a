package jwt_test

import (
	"testing"

	pkgjwt "github.com/jhoicas/Mercado-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testAccountID = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "mercado-test"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testAccountID, "supplier", testIssuer, 60)
	require.NoError(t, err)

	accountID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testAccountID, accountID)
	assert.Equal(t, "supplier", role)
}

func TestParse_RechazaSecretoIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testAccountID, "user", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "un token firmado con otro secreto no debe validar")
}

func TestParse_RechazaTokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testAccountID, "user", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token vencido no debe validar")
}

func TestGenerateRefresh_SinRol(t *testing.T) {
	tok, err := pkgjwt.GenerateRefresh(testSecret, testAccountID, testIssuer, 60)
	require.NoError(t, err)

	accountID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testAccountID, accountID)
	assert.Empty(t, role, "el token de refresco no lleva rol")
}

func TestGenerate_ExigeSecreto(t *testing.T) {
	_, err := pkgjwt.Generate("", testAccountID, "user", testIssuer, 60)
	assert.Error(t, err)
}

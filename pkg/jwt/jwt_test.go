package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/jhoicas/taxhelper-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate("secret", "kakao-123", "1234567891", jwt.RoleUser, "taxhelper", 5)
	require.NoError(t, err)

	userID, bizNo, role, err := jwt.Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "kakao-123", userID)
	assert.Equal(t, "1234567891", bizNo)
	assert.Equal(t, jwt.RoleUser, role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secret", "kakao-123", "", jwt.RoleUser, "taxhelper", 5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("secret", "kakao-123", "", jwt.RoleUser, "taxhelper", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("secret", token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_SubjectComoUsuario(t *testing.T) {
	claims := gojwt.RegisteredClaims{Subject: "kakao-sub"}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	userID, _, _, err := jwt.Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "kakao-sub", userID)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u", "", jwt.RoleUser, "i", 5)
	assert.Error(t, err)
	_, _, _, err = jwt.Parse("", "x")
	assert.Error(t, err)
}

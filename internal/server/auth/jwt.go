package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/SinaFr/todolist-backend/internal/common"
)

// Claims carries the single custom claim of a session token: the username
// of the authenticated account.
//
// Tokens deliberately carry no expiry claim. The session cookie transporting
// the token is the expiring part; the token itself stays valid as long as
// the signing secret does not change.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// GenerateToken signs a token asserting the given username with HS256.
func GenerateToken(username string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken recomputes the signature of tokenString under
// secretKey and returns the username claim. Malformed input, a signature
// mismatch or a missing username claim all yield common.ErrInvalidToken.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Username == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}

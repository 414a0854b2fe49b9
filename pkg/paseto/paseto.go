package paseto

import (
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"InOut-Attendance-Backend/config"
	"InOut-Attendance-Backend/models"

	"github.com/o1egl/paseto"
)

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

var (
	pasetoInstance = paseto.NewV2()
	symmetricKey   []byte
	keyOnce        sync.Once
)

func loadKey() {
	cfg := config.LoadConfig()

	decodedKey, err := base64.URLEncoding.DecodeString(cfg.PASETO_SECRET)
	if err != nil {
		decodedKey, err = base64.StdEncoding.DecodeString(cfg.PASETO_SECRET)
		if err != nil {
			panic(fmt.Sprintf("Failed to decode PASETO_SECRET: %v", err))
		}
	}

	if len(decodedKey) != 32 {
		panic(fmt.Sprintf("PASETO_SECRET must be exactly 32 bytes after Base64 decoding, got %d bytes", len(decodedKey)))
	}

	symmetricKey = decodedKey
}

func GenerateToken(user *models.User) (string, error) {
	keyOnce.Do(loadKey)

	now := time.Now()
	exp := now.Add(24 * time.Hour)

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	token.Set("user_id", user.UID)
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return pasetoInstance.Encrypt(symmetricKey, token, "")
}

func ValidateToken(tokenString string) (*Claims, error) {
	keyOnce.Do(loadKey)

	var token paseto.JSONToken
	var footer string

	err := pasetoInstance.Decrypt(tokenString, symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	claims := &Claims{
		UserID: token.Get("user_id"),
		Email:  token.Get("email"),
		Role:   token.Get("role"),
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("token is missing the user_id claim")
	}

	return claims, nil
}

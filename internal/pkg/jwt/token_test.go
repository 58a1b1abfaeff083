package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "rides-test",
		},
	}
}

func TestGenerateToken_ExpirationTime(t *testing.T) {
	config := getTestConfig()
	config.JWT.Expiration = 30

	beforeGeneration := time.Now()
	tokenString, expiresAt, err := GenerateToken(uuid.New(), models.RoleDriver, config)
	afterGeneration := time.Now()

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.GreaterOrEqual(t, expiresAt, beforeGeneration.Add(30*time.Minute).Unix())
	assert.LessOrEqual(t, expiresAt, afterGeneration.Add(30*time.Minute).Unix())
}

func TestValidateToken(t *testing.T) {
	config := getTestConfig()
	userID := uuid.New()

	validToken, _, err := GenerateToken(userID, models.RoleRider, config)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
		setupToken  func() string
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      config.JWT.Secret,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				expiredConfig := *config
				expiredConfig.JWT.Expiration = -1
				token, _, _ := GenerateToken(userID, models.RoleRider, &expiredConfig)
				return token
			},
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name: "Unsigned token",
			setupToken: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": userID.String()})
				s, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				return s
			},
			secret:      config.JWT.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenToTest := tt.tokenString
			if tt.setupToken != nil {
				tokenToTest = tt.setupToken()
			}

			claims, err := ValidateToken(tokenToTest, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			claimsMap := *claims
			assert.Equal(t, userID.String(), claimsMap["user_id"])
			assert.Equal(t, "rider", claimsMap["role"])
			assert.Equal(t, config.JWT.Issuer, claimsMap["iss"])
		})
	}
}

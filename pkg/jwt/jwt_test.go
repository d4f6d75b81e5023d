package jwt

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateToken_CarriesIdentity(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		role   string
	}{
		{"member", "0190c0de-0000-7000-8000-000000000001", "member"},
		{"admin", "0190c0de-0000-7000-8000-0000000000ad", "admin"},
	}

	service := NewService(testSecret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now().Add(-time.Second)
			token, err := service.GenerateToken(tt.userID, tt.role)
			require.NoError(t, err)

			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.userID, claims.Subject)
			assert.Equal(t, tt.role, claims.Role)
			require.NotNil(t, claims.ExpiresAt)
			assert.WithinDuration(t, before.Add(tokenTTL), claims.ExpiresAt.Time, 5*time.Second)
		})
	}
}

// Tokens minted by the identity provider share the secret but not our generator.
func TestValidateToken_ExternallyIssuedAdminToken(t *testing.T) {
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"user_id": "admin-7",
		"role":    "admin",
		"email":   "coach@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := NewService(testSecret).ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin-7", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_Rejects(t *testing.T) {
	service := NewService(testSecret)

	expired := gojwt.NewWithClaims(gojwt.SigningMethodHS256, &Claims{
		UserID: "user-123",
		Role:   "member",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, &Claims{UserID: "user-123", Role: "admin"})
	unsignedToken, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	otherSecret, err := NewService("another-secret").GenerateToken("user-123", "admin")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "invalid-token"},
		{"expired", expiredToken},
		{"alg none", unsignedToken},
		{"wrong secret", otherSecret},
		{"member promoted to admin", promoteToAdmin(t, service)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

// promoteToAdmin swaps the payload of a member token for an admin one while
// keeping the original signature.
func promoteToAdmin(t *testing.T, service *Service) string {
	t.Helper()
	memberToken, err := service.GenerateToken("user-123", "member")
	require.NoError(t, err)
	adminToken, err := NewService("forged").GenerateToken("user-123", "admin")
	require.NoError(t, err)

	member := strings.Split(memberToken, ".")
	admin := strings.Split(adminToken, ".")
	require.Len(t, member, 3)
	require.Len(t, admin, 3)
	return strings.Join([]string{member[0], admin[1], member[2]}, ".")
}

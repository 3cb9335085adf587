package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transfit/workout-app/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret string, userID string, role domain.Role, expiresIn time.Duration) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := getUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router := protectedRouter()
	userID := primitive.NewObjectID().Hex()

	t.Run("valid token passes and seeds context", func(t *testing.T) {
		token := signToken(t, testSecret, userID, domain.RoleMember, time.Hour)
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID)
	})

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doRequest(router, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signature", func(t *testing.T) {
		token := signToken(t, "some-other-secret", userID, domain.RoleMember, time.Hour)
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret, userID, domain.RoleMember, -time.Hour)
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("missing claims", func(t *testing.T) {
		token := signToken(t, testSecret, "", domain.RoleMember, time.Hour)
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	router := protectedRouter(RoleMiddleware(domain.RoleAdmin))
	userID := primitive.NewObjectID().Hex()

	t.Run("admin is allowed", func(t *testing.T) {
		token := signToken(t, testSecret, userID, domain.RoleAdmin, time.Hour)
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("member is forbidden", func(t *testing.T) {
		token := signToken(t, testSecret, userID, domain.RoleMember, time.Hour)
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

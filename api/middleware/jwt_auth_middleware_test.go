package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reward_system/domain/domain_operator"
	"reward_system/usecase/usecase_operator"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func protectedEngine(secret string) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var gotOperatorID string
	engine := gin.New()
	engine.Use(JwtAuthMiddleware(secret))
	engine.GET("/ping", func(c *gin.Context) {
		gotOperatorID = c.GetString("x-operator-id")
		c.Status(http.StatusOK)
	})
	return engine, &gotOperatorID
}

func issueToken(t *testing.T, secret string, expiryHour int) (string, *domain_operator.Operator) {
	t.Helper()
	operator := &domain_operator.Operator{ID: primitive.NewObjectID(), Name: "admin"}
	uc := usecase_operator.NewLoginUsecase(nil, time.Second)
	token, err := uc.CreateAccessToken(operator, secret, expiryHour)
	require.NoError(t, err)
	return token, operator
}

func TestJwtAuthMiddlewareAcceptsIssuedToken(t *testing.T) {
	engine, gotOperatorID := protectedEngine(testSecret)
	token, operator := issueToken(t, testSecret, 1)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, operator.ID.Hex(), *gotOperatorID)
}

func TestJwtAuthMiddlewareRejects(t *testing.T) {
	engine, _ := protectedEngine(testSecret)

	tests := []struct {
		name   string
		header string
	}{
		{name: "无令牌", header: ""},
		{name: "格式错误", header: "token-without-scheme"},
		{name: "密钥不匹配", header: func() string {
			token, _ := issueToken(t, "other-secret", 1)
			return "Bearer " + token
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestJwtAuthMiddlewareRejectsWrongAlgorithm(t *testing.T) {
	engine, _ := protectedEngine(testSecret)

	// alg=none 的令牌必须被拒绝
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &usecase_operator.JwtCustomClaims{Name: "admin"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"reward_system/domain"
	"reward_system/usecase/usecase_operator"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// JwtAuthMiddleware 校验 Authorization: Bearer 访问令牌，通过后写入操作员标识
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Code: "UNAUTHORIZED", Message: "未提供访问令牌"})
			c.Abort()
			return
		}

		claims := &usecase_operator.JwtCustomClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Code: "UNAUTHORIZED", Message: "访问令牌无效或已过期"})
			c.Abort()
			return
		}

		c.Set("x-operator-id", claims.ID)
		c.Next()
	}
}

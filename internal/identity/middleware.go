package identity

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	callerIDContextKey      = "__identity_caller_id"
	authenticatedContextKey = "__identity_authenticated"
)

// Middleware 解析身份服务签发的会话令牌，并将调用者身份写入请求上下文。
// 公开路由允许匿名访问，因此令牌缺失或无效时不中断请求，仅视为未认证。
func Middleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, err := decodeSessionToken(token, jwtSecret)
		if err != nil || userID == "" {
			c.Next()
			return
		}

		c.Set(callerIDContextKey, userID)
		c.Set(authenticatedContextKey, true)
		c.Next()
	}
}

// Caller returns the authenticated caller id and whether the request
// carried a valid session token.
func Caller(c *gin.Context) (string, bool) {
	authenticated, _ := c.Get(authenticatedContextKey)
	if ok, _ := authenticated.(bool); !ok {
		return "", false
	}

	raw, _ := c.Get(callerIDContextKey)
	userID, _ := raw.(string)
	if userID == "" {
		return "", false
	}
	return userID, true
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func decodeSessionToken(tokenString, jwtSecret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	return claims.Subject, nil
}

package middleware

import (
	"net/http"
	"strings"

	"Notely/pkg/context"
	"Notely/pkg/jwt"
	"Notely/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 校验 Bearer token，把 user_id / username 放进请求上下文。
// token 在过期前一直有效，没有吊销机制。
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)

		c.Next()
	}
}

package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "user_id"
	UserNameKey = "user_name"
)

// ExtractUserContext lê a identificação do usuário dos headers injetados pelo
// gateway após a autenticação:
// - X-User-ID: ID do usuário
// - X-User-Name: nome exibido como autor dos códigos
func ExtractUserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := strings.TrimSpace(c.GetHeader("X-User-ID")); userID != "" {
			c.Set(UserIDKey, userID)
		}
		if userName := strings.TrimSpace(c.GetHeader("X-User-Name")); userName != "" {
			c.Set(UserNameKey, userName)
		}
		c.Next()
	}
}

// GetUserID retorna o ID do usuário da requisição
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetUserName retorna o nome do usuário da requisição
func GetUserName(c *gin.Context) string {
	return c.GetString(UserNameKey)
}

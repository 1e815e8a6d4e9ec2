package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsHeaders são os headers aplicados a toda resposta cross-origin.
// O painel e a página pública de agendamento rodam em origens próprias,
// então refletimos a Origin da requisição em vez de usar wildcard
// (wildcard não combina com Allow-Credentials).
var corsHeaders = map[string]string{
	"Access-Control-Allow-Credentials": "true",
	"Access-Control-Allow-Headers":     "Content-Type, Authorization",
	"Access-Control-Allow-Methods":     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	"Access-Control-Max-Age":           "3600",
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			for k, v := range corsHeaders {
				h.Set(k, v)
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

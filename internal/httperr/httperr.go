package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError é o corpo padrão de erro da API. Details só aparece quando
// o erro carrega dados que o cliente precisa para reagir (ex.: o id do
// lançamento criado numa conclusão parcial).
type HTTPError struct {
	Code    string         `json:"error_code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{Code: code, Message: message})
}

// WriteWith inclui campos extras no corpo do erro.
func WriteWith(c *gin.Context, status int, code, message string, details map[string]any) {
	c.JSON(status, HTTPError{Code: code, Message: message, Details: details})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

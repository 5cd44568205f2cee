package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
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

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// StatusFor mapeia um Kind para o status HTTP.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindSlotConflict, KindInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var messages = map[Kind]string{
	KindValidation:        "Dados inválidos.",
	KindInvalidArgument:   "Parâmetro inválido.",
	KindNotFound:          "Registro não encontrado.",
	KindSlotConflict:      "Horário indisponível.",
	KindInvalidTransition: "Transição de status não permitida.",
}

// Respond escreve o erro de um use case. Erros sem Kind viram 500 e são
// registrados no contexto do gin para o middleware de log.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, StatusFor(be.Kind), be.Code, messages[be.Kind])
		return
	}

	_ = c.Error(err)
	Internal(c, "internal_error", "Erro interno.")
}

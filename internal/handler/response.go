package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

// JSON body keys. The endpoints predate this codebase and are split
// between the two; each handler states which one its consumers parse.
const (
	KeyError   = "error"
	KeyMessage = "message"
)

// Error writes err as {key: message} with the status carried by the error.
// Unknown errors become a generic 500. Internal causes are logged here so
// handlers never leak them to the client.
func Error(c *gin.Context, err error, key string) {
	if appErr, ok := apperror.As(err); ok {
		if appErr.Kind == apperror.KindInternal {
			log.Error().Err(appErr.Err).Str("path", c.Request.URL.Path).Msg(appErr.Message)
		}
		c.JSON(appErr.StatusCode(), gin.H{key: appErr.Message})
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{key: "Error interno del servidor"})
}

// ParseID reads a numeric path parameter, answering 400 under the given
// key when it is not a number.
func ParseID(c *gin.Context, param, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{key: "ID inválido"})
		return 0, false
	}
	return id, true
}

// ErrorWithMessage is Error with the body text replaced, for endpoints
// whose consumers expect a wording different from the shared service
// message.
func ErrorWithMessage(c *gin.Context, err error, key, message string) {
	if appErr, ok := apperror.As(err); ok {
		if appErr.Kind == apperror.KindInternal {
			log.Error().Err(appErr.Err).Str("path", c.Request.URL.Path).Msg(appErr.Message)
		}
		c.JSON(appErr.StatusCode(), gin.H{key: message})
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{key: message})
}

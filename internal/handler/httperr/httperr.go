package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint emits. The flat shape
// matches the handlers' inline gin.H{"error": ...} responses.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// Abort records the cause on the context for the logging middleware
// and writes the public error body.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

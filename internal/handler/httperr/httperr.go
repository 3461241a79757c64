package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire error envelope: a stable classification code in
// "error" plus a human-readable message. Clients branch on the code,
// not on the HTTP status.
type Response struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"errorMessage"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Code: code, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

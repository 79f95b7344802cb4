package httperr

import (
	"net/http"

	"salon-booking/internal/pkg/validation"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithBindError reports a failed ShouldBind* call, listing the offending
// fields in detail when the validator produced them.
func AbortWithBindError(c *gin.Context, err error) {
	var detail any
	if fields := validation.FormatErrors(err); len(fields) > 0 {
		detail = fields
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
}

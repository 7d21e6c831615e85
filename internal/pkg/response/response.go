// internal/pkg/response/response.go
package response

import (
	"github.com/gin-gonic/gin"

	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
)

// ErrorBody is the uniform error shape returned to callers.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON sends a successful response with an arbitrary payload.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Error sends a standardized error response with the given status code.
func Error(c *gin.Context, code int, message string, err error) {
	// Abort first so later middleware cannot write a second response.
	c.Abort()

	body := ErrorBody{Error: message}
	if err != nil {
		body.Details = err.Error()
	}
	c.JSON(code, body)
}

// FromError maps a service error to its HTTP status and sends it.
func FromError(c *gin.Context, message string, err error) {
	Error(c, xerrors.HTTPStatus(err), message, err)
}

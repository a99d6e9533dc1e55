package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "cost-item-service/pkg/errors"
)

// OK sends 200 JSON with the payload as the body.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Error renders an error as JSON. HTTPError values carry their own status
// code; anything else is an unclassified failure and becomes a 500 with a
// canned message.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	InternalError(c)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "lead-qualification-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. *errors.HTTPError values keep their status
// code; anything else is reported as a 400 with the error text.
func Error(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}

// Attachment streams body as a file download.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, body)
}

package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data  interface{}            `json:"data,omitempty"`
	Error *appErrors.Error       `json:"error,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional metadata.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	envelope := Envelope{Data: data}
	if len(meta) > 0 && len(meta[0]) > 0 {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	_ = c.Error(err)
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// HTML writes a pre-rendered page body.
func HTML(c *gin.Context, status int, body []byte) {
	c.Data(status, "text/html; charset=utf-8", body)
}

// ErrorPage renders the "error" template for browser-facing routes. The data
// has the same shape as a page layout so the shared header and footer apply.
func ErrorPage(c *gin.Context, siteName string, err error) {
	appErr := appErrors.FromError(err)
	title := http.StatusText(appErr.Status)
	c.Header("Cache-Control", "no-store")
	_ = c.Error(err)
	c.HTML(appErr.Status, "error", gin.H{
		"SiteName": siteName,
		"Title":    title,
		"Active":   "",
		"Year":     time.Now().Year(),
		"Content": gin.H{
			"Status":  appErr.Status,
			"Title":   title,
			"Message": appErr.Message,
		},
	})
}

// Attachment sends a downloadable file.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

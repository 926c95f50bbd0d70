package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body. Every failed request gets a
// JSON body of this shape, never an empty response.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler converts errors into HTTP responses.
type GinErrorHandler struct {
	// Debug keeps underlying error text in 500 responses. Leave false for
	// anything externally reachable.
	Debug bool
}

var defaultHandler = &GinErrorHandler{}

// SetDebug configures the package-level handler, typically once at startup.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

// HandleGinError writes err to the response as a structured JSON body.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error())
		if h.Debug && appErr.Err != nil {
			appErr.Details = appErr.Err.Error()
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError is the package-level helper used by handlers.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

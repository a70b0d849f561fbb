package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fault is the payload for propagated faults: failures that surface as a
// generic server error rather than a structured success=false result.
type Fault struct {
	Error string `json:"error"`
}

// InternalError sends a 500 with the fault text embedded
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Fault{Error: message})
}

// BadRequest sends a 400 for malformed request payloads
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Fault{Error: message})
}

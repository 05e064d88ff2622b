package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	responseSuccess = "SUCCESS"
	responseFailure = "FAILURE"
)

func int64Param(raw, name string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// result writes the SUCCESS/FAILURE body used by every command endpoint.
func result(c *gin.Context, err error) {
	if err != nil {
		c.String(http.StatusOK, responseFailure)
		return
	}
	c.String(http.StatusOK, responseSuccess)
}

// nameResult writes a found name as text and a missing one as JSON null.
func nameResult(c *gin.Context, value string, ok bool) {
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.String(http.StatusOK, value)
}

// Package web holds the JSON response envelope shared by all handlers:
// {"success":true,"data":...} on success, {"success":false,"message":...}
// on failure.
package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunnatill0raimov/luxe/errs"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": true, "message": msg})
}

// Fail maps the error to its HTTP status. Errors that did not come
// from the errs package become an opaque 500.
func Fail(c *gin.Context, err error) {
	var e *errs.Error
	msg := "Server error"
	if errors.As(err, &e) {
		msg = e.Message
	}
	_ = c.Error(err)
	c.JSON(errs.StatusOf(err), gin.H{"success": false, "message": msg})
}

// BadRequest reports a request binding problem.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
}

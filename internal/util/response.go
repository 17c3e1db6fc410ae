package util

import (
	"log"
	"net/http"

	"taskboard/internal/auth"

	"github.com/gin-gonic/gin"
)

// business error codes carried alongside the HTTP status
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeForbidden    = 40301
	CodeNotFound     = 40401
	CodeServerErr    = 50001
)

// Error renders a uniform error body.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// RenderAuthError is the single translation point from the auth core's
// typed failures to HTTP responses. The internal reason is logged here and
// deliberately never included in the body: a revoked, expired, malformed
// or unknown credential all read the same to a client.
func RenderAuthError(c *gin.Context, err error) {
	ae, ok := auth.AsError(err)
	if !ok {
		log.Printf("auth: unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		Error(c, http.StatusInternalServerError, CodeServerErr, "Internal server error")
		return
	}

	switch ae.Kind {
	case auth.KindInvalidCredential, auth.KindUnauthorized:
		log.Printf("auth: %s %s rejected: %s", c.Request.Method, c.Request.URL.Path, ae.Reason)
		Error(c, http.StatusUnauthorized, CodeAuth, "Unauthorized")
	case auth.KindForbidden:
		Error(c, http.StatusForbidden, CodeForbidden, "Forbidden")
	case auth.KindNotFound:
		Error(c, http.StatusNotFound, CodeNotFound, ae.Message)
	case auth.KindStorage:
		log.Printf("auth: %s %s store failure: %v", c.Request.Method, c.Request.URL.Path, ae.Err)
		Error(c, http.StatusInternalServerError, CodeServerErr, "Internal server error")
	default:
		Error(c, http.StatusInternalServerError, CodeServerErr, "Internal server error")
	}
}

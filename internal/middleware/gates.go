package middleware

import (
	"net/http"
	"strconv"

	"taskboard/internal/auth"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
)

// Per-route authorization gates, run after Authenticate and before the
// handler. Each one short-circuits the chain on the first failure, so a
// handler only ever runs for an allowed caller.

// RequireAdmin admits admin identities only.
func RequireAdmin(gates *auth.Gates) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Unauthorized")
			c.Abort()
			return
		}
		if err := gates.RequireAdmin(identity); err != nil {
			util.RenderAuthError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin admits admins, or the user named by the :userId param.
func RequireSelfOrAdmin(gates *auth.Gates) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Unauthorized")
			c.Abort()
			return
		}
		userID, ok := paramID(c, "userId")
		if !ok {
			return
		}
		if err := gates.RequireSelfOrAdmin(identity, userID); err != nil {
			util.RenderAuthError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireBoardOwner admits admins, or the owner of the :boardId board.
func RequireBoardOwner(gates *auth.Gates) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Unauthorized")
			c.Abort()
			return
		}
		boardID, ok := paramID(c, "boardId")
		if !ok {
			return
		}
		if err := gates.RequireBoardOwnerOrAdmin(c.Request.Context(), identity, boardID); err != nil {
			util.RenderAuthError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireTaskOwner admits admins, or the owner of the :taskId task.
func RequireTaskOwner(gates *auth.Gates) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Unauthorized")
			c.Abort()
			return
		}
		taskID, ok := paramID(c, "taskId")
		if !ok {
			return
		}
		if err := gates.RequireTaskOwnerOrAdmin(c.Request.Context(), identity, taskID); err != nil {
			util.RenderAuthError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// paramID parses an integer route parameter, rejecting the request with a
// 400 when it is not a number. On failure the chain is already aborted.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid "+name)
		c.Abort()
		return 0, false
	}
	return uint(id), true
}

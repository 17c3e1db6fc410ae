package handler

import (
	"net/http"

	"taskboard/internal/auth"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes credential issuance, the only unauthenticated route.
type AuthHandler struct {
	Manager *auth.Manager
}

func NewAuthHandler(manager *auth.Manager) *AuthHandler {
	return &AuthHandler{Manager: manager}
}

type authenticateReq struct {
	Email string `json:"email" binding:"required,email"`
}

// Authenticate handles POST /auth: exchanges a registered email for a
// signed credential. An unknown email is a plain 401 with no session
// created.
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req authenticateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid payload")
		return
	}

	credential, err := h.Manager.Authenticate(c.Request.Context(), req.Email)
	if err != nil {
		util.RenderAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": credential})
}

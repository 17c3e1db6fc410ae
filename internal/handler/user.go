package handler

import (
	"net/http"

	"taskboard/internal/models"
	"taskboard/internal/store"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler implements user management. Collection-level routes are
// admin-only; record-level reads and updates are self-or-admin. All of
// that is decided by the gates before these run.
type UserHandler struct {
	Store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{Store: st}
}

type userReq struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  *string `json:"lastName"`
	Email     string  `json:"email" binding:"required,email"`
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to get users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	user, err := h.Store.GetUser(c.Request.Context(), userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to get user")
		return
	}
	if user == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser registers a new non-admin user. There is no route that
// creates an admin; admins come from seeding.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid payload")
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		Email:     req.Email,
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if err := h.Store.CreateUser(c.Request.Context(), &user); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid payload")
		return
	}

	user, err := h.Store.UpdateUser(c.Request.Context(), userID, &req.FirstName, req.LastName, &req.Email)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update user")
		return
	}
	if user == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user and, in the same transaction, every session
// issued to them. Their boards and tasks are not touched; only the
// credentials die with the account record.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.Store.DeleteUser(c.Request.Context(), userID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

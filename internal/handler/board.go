package handler

import (
	"net/http"
	"strconv"

	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/store"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
)

// BoardHandler implements board CRUD. Ownership is already decided by the
// gate middleware before any of these run; handlers only do the work.
type BoardHandler struct {
	Store *store.Store
}

func NewBoardHandler(st *store.Store) *BoardHandler {
	return &BoardHandler{Store: st}
}

type createBoardReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateBoardReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ListBoards returns the caller's own boards.
func (h *BoardHandler) ListBoards(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Unauthorized")
		return
	}

	boards, err := h.Store.ListBoards(c.Request.Context(), identity.UserID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to get boards")
		return
	}
	c.JSON(http.StatusOK, boards)
}

func (h *BoardHandler) CreateBoard(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Unauthorized")
		return
	}

	var req createBoardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid payload")
		return
	}

	board := models.Board{
		UserID:      identity.UserID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.Store.CreateBoard(c.Request.Context(), &board); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create board")
		return
	}
	c.JSON(http.StatusCreated, board)
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	board, err := h.Store.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to get board")
		return
	}
	if board == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	var req updateBoardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid payload")
		return
	}

	board, err := h.Store.UpdateBoard(c.Request.Context(), boardID, req.Title, req.Description)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update board")
		return
	}
	if board == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, board)
}

// DeleteBoard removes the board and its tasks in one transaction.
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	if err := h.Store.DeleteBoard(c.Request.Context(), boardID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete board")
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses an integer route parameter shared by the handlers. Gated
// routes have already validated it, so a failure here is a stray request
// on an ungated path.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

package handler

import (
	"net/http"

	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/store"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
)

// TaskHandler implements task CRUD and the move-task operation.
type TaskHandler struct {
	Store *store.Store
}

func NewTaskHandler(st *store.Store) *TaskHandler {
	return &TaskHandler{Store: st}
}

type createTaskReq struct {
	Title  string `json:"title" binding:"required"`
	Weight *int   `json:"weight" binding:"required"`
}

type updateTaskReq struct {
	Title  *string `json:"title"`
	Weight *int    `json:"weight"`
}

// ListTasks returns the tasks on one board. The board gate has already
// decided the caller may see it.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	tasks, err := h.Store.ListTasks(c.Request.Context(), boardID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to get tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a task on a board. The task's owner is the caller,
// which is also who the task gate will check on later operations.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Unauthorized")
		return
	}
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid payload")
		return
	}

	task := models.Task{
		BoardID: boardID,
		UserID:  identity.UserID,
		Title:   req.Title,
		Weight:  *req.Weight,
	}
	if err := h.Store.CreateTask(c.Request.Context(), &task); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create task")
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	task, err := h.Store.GetTask(c.Request.Context(), taskID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to get task")
		return
	}
	if task == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid payload")
		return
	}

	task, err := h.Store.UpdateTask(c.Request.Context(), taskID, req.Title, req.Weight)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update task")
		return
	}
	if task == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, task)
}

// MoveTask reassigns a task to a target board without changing its owner.
func (h *TaskHandler) MoveTask(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	task, err := h.Store.MoveTask(c.Request.Context(), taskID, boardID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update task")
		return
	}
	if task == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	if err := h.Store.DeleteTask(c.Request.Context(), taskID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

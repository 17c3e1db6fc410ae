package router

import (
	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/store"
	"taskboard/internal/token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the full request pipeline: request id and logging on
// everything, credential resolution plus the declared gate on each
// protected route, and the handlers behind them.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())

	st := store.New(db)
	codec := token.NewCodec(cfg.JWT.Secret)
	manager := auth.NewManager(codec, st)
	gates := auth.NewGates(st)

	authHandler := handler.NewAuthHandler(manager)
	boardHandler := handler.NewBoardHandler(st)
	taskHandler := handler.NewTaskHandler(st)
	userHandler := handler.NewUserHandler(st)

	// credential issuance, the only unauthenticated route
	r.POST("/auth", authHandler.Authenticate)

	// everything below resolves the credential exactly once
	protected := r.Group("")
	protected.Use(middleware.Authenticate(manager))

	protected.GET("/boards", boardHandler.ListBoards)
	protected.POST("/boards", boardHandler.CreateBoard)

	boardOwned := protected.Group("")
	boardOwned.Use(middleware.RequireBoardOwner(gates))
	boardOwned.GET("/boards/:boardId", boardHandler.GetBoard)
	boardOwned.PUT("/boards/:boardId", boardHandler.UpdateBoard)
	boardOwned.DELETE("/boards/:boardId", boardHandler.DeleteBoard)
	boardOwned.GET("/boards/:boardId/tasks", taskHandler.ListTasks)
	boardOwned.POST("/boards/:boardId/tasks", taskHandler.CreateTask)

	taskOwned := protected.Group("")
	taskOwned.Use(middleware.RequireTaskOwner(gates))
	taskOwned.GET("/tasks/:taskId", taskHandler.GetTask)
	taskOwned.PUT("/tasks/:taskId", taskHandler.UpdateTask)
	taskOwned.DELETE("/tasks/:taskId", taskHandler.DeleteTask)
	taskOwned.PUT("/tasks/:taskId/move/target/:boardId", taskHandler.MoveTask)

	adminOnly := protected.Group("")
	adminOnly.Use(middleware.RequireAdmin(gates))
	adminOnly.GET("/users", userHandler.ListUsers)
	adminOnly.POST("/users", userHandler.CreateUser)
	adminOnly.DELETE("/users/:userId", userHandler.DeleteUser)

	selfOrAdmin := protected.Group("")
	selfOrAdmin.Use(middleware.RequireSelfOrAdmin(gates))
	selfOrAdmin.GET("/users/:userId", userHandler.GetUser)
	selfOrAdmin.PUT("/users/:userId", userHandler.UpdateUser)

	return r
}

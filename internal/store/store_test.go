package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"taskboard/internal/database"
	"taskboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func mustCreateUser(t *testing.T, s *Store, email string, admin bool) *models.User {
	t.Helper()
	user := &models.User{Email: email, FirstName: "Test", IsAdmin: admin}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := mustCreateUser(t, s, "hari@happy5.co", false)

	session, err := s.CreateSession(ctx, user.ID, time.Hour)
	if err != nil {
		t.Fatalf("CreateSession error = %v", err)
	}
	if !session.Valid {
		t.Error("new session is not valid")
	}
	wantExp := time.Now().Add(time.Hour)
	if diff := session.Expiration.Sub(wantExp); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiration %v, want about %v", session.Expiration, wantExp)
	}

	got, err := s.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession error = %v", err)
	}
	if got == nil || got.UserID != user.ID || !got.Valid {
		t.Fatalf("GetSession = %+v", got)
	}

	// revoking twice is a no-op, not an error
	for i := 0; i < 2; i++ {
		if err := s.RevokeSession(ctx, session.ID); err != nil {
			t.Fatalf("RevokeSession #%d error = %v", i+1, err)
		}
	}
	got, err = s.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession error = %v", err)
	}
	if got.Valid {
		t.Error("session still valid after revoke")
	}
}

func TestGetSessionAbsent(t *testing.T) {
	s := openTestStore(t)

	session, err := s.GetSession(context.Background(), 12345)
	if err != nil {
		t.Fatalf("GetSession error = %v", err)
	}
	if session != nil {
		t.Errorf("GetSession = %+v, want nil", session)
	}
}

func TestGetUserByEmailExactMatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	mustCreateUser(t, s, "hari@happy5.co", false)

	user, err := s.GetUserByEmail(ctx, "hari@happy5.co")
	if err != nil || user == nil {
		t.Fatalf("GetUserByEmail = %v, %v", user, err)
	}

	// matching is case-sensitive
	user, err = s.GetUserByEmail(ctx, "Hari@happy5.co")
	if err != nil {
		t.Fatalf("GetUserByEmail error = %v", err)
	}
	if user != nil {
		t.Errorf("GetUserByEmail matched a differently-cased email: %+v", user)
	}
}

func TestDeleteBoardCascadesTasks(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := mustCreateUser(t, s, "hari@happy5.co", false)

	board := &models.Board{UserID: user.ID, Title: "roadmap", Description: "q3"}
	other := &models.Board{UserID: user.ID, Title: "icebox", Description: "later"}
	for _, b := range []*models.Board{board, other} {
		if err := s.CreateBoard(ctx, b); err != nil {
			t.Fatalf("create board: %v", err)
		}
	}
	for _, b := range []*models.Board{board, board, other} {
		task := &models.Task{BoardID: b.ID, UserID: user.ID, Title: "t", Weight: 1}
		if err := s.CreateTask(ctx, task); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	if err := s.DeleteBoard(ctx, board.ID); err != nil {
		t.Fatalf("DeleteBoard error = %v", err)
	}

	if got, err := s.GetBoard(ctx, board.ID); err != nil || got != nil {
		t.Errorf("board survived delete: %v, %v", got, err)
	}
	tasks, err := s.ListTasks(ctx, board.ID)
	if err != nil {
		t.Fatalf("ListTasks error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("%d tasks survived board delete", len(tasks))
	}

	// the other board and its task are untouched
	remaining, err := s.ListTasks(ctx, other.ID)
	if err != nil {
		t.Fatalf("ListTasks error = %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("other board has %d tasks, want 1", len(remaining))
	}
}

func TestDeleteUserCascadesSessions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := mustCreateUser(t, s, "hari@happy5.co", false)
	bystander := mustCreateUser(t, s, "other@happy5.co", false)

	session, err := s.CreateSession(ctx, user.ID, time.Hour)
	if err != nil {
		t.Fatalf("CreateSession error = %v", err)
	}
	kept, err := s.CreateSession(ctx, bystander.ID, time.Hour)
	if err != nil {
		t.Fatalf("CreateSession error = %v", err)
	}

	if err := s.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser error = %v", err)
	}

	if got, err := s.GetUser(ctx, user.ID); err != nil || got != nil {
		t.Errorf("user survived delete: %v, %v", got, err)
	}
	if got, err := s.GetSession(ctx, session.ID); err != nil || got != nil {
		t.Errorf("session survived user delete: %v, %v", got, err)
	}
	if got, err := s.GetSession(ctx, kept.ID); err != nil || got == nil {
		t.Errorf("bystander session was deleted: %v, %v", got, err)
	}
}

func TestUpdateBoardPartial(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := mustCreateUser(t, s, "hari@happy5.co", false)

	board := &models.Board{UserID: user.ID, Title: "roadmap", Description: "q3"}
	if err := s.CreateBoard(ctx, board); err != nil {
		t.Fatalf("create board: %v", err)
	}

	title := "renamed"
	updated, err := s.UpdateBoard(ctx, board.ID, &title, nil)
	if err != nil {
		t.Fatalf("UpdateBoard error = %v", err)
	}
	if updated.Title != "renamed" || updated.Description != "q3" {
		t.Errorf("UpdateBoard = %+v, want only the title changed", updated)
	}

	if got, err := s.UpdateBoard(ctx, 999, &title, nil); err != nil || got != nil {
		t.Errorf("UpdateBoard on missing board = %v, %v, want nil, nil", got, err)
	}
}

func TestMoveTaskKeepsOwner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := mustCreateUser(t, s, "hari@happy5.co", false)

	src := &models.Board{UserID: user.ID, Title: "src", Description: "d"}
	dst := &models.Board{UserID: user.ID, Title: "dst", Description: "d"}
	for _, b := range []*models.Board{src, dst} {
		if err := s.CreateBoard(ctx, b); err != nil {
			t.Fatalf("create board: %v", err)
		}
	}
	task := &models.Task{BoardID: src.ID, UserID: user.ID, Title: "t", Weight: 3}
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	moved, err := s.MoveTask(ctx, task.ID, dst.ID)
	if err != nil {
		t.Fatalf("MoveTask error = %v", err)
	}
	if moved.BoardID != dst.ID {
		t.Errorf("BoardID = %d, want %d", moved.BoardID, dst.ID)
	}
	if moved.UserID != user.ID {
		t.Errorf("UserID changed on move: %d", moved.UserID)
	}
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/models"

	"gorm.io/gorm"
)

// Store is the gorm-backed persistence layer. It implements the contracts
// the auth core consumes (auth.SessionStore, auth.ResourceStore) and the
// CRUD operations the handlers need. Lookups return (nil, nil) for absent
// rows; any other error is a real store failure.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ---------- sessions ----------

func (s *Store) CreateSession(ctx context.Context, userID uint, ttl time.Duration) (*models.Session, error) {
	session := models.Session{
		UserID:     userID,
		Expiration: time.Now().Add(ttl),
		Valid:      true,
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &session, nil
}

func (s *Store) GetSession(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// RevokeSession clears the valid flag. Already-revoked sessions stay
// revoked; this never errors on a missing or repeated revocation.
func (s *Store) RevokeSession(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", id).
		Update("valid", false).Error
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// ---------- users ----------

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail does an exact, case-sensitive match.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, id uint, firstName, lastName, email *string) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	updates := map[string]interface{}{}
	if firstName != nil {
		updates["first_name"] = *firstName
	}
	if lastName != nil {
		updates["last_name"] = *lastName
	}
	if email != nil {
		updates["email"] = *email
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}
	return user, nil
}

// DeleteUser removes a user and every session issued to them in one
// transaction: a deleted user must not leave credentials behind that
// could still resolve.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ---------- boards ----------

func (s *Store) GetBoard(ctx context.Context, id uint) (*models.Board, error) {
	var board models.Board
	if err := s.db.WithContext(ctx).First(&board, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get board: %w", err)
	}
	return &board, nil
}

// ListBoards returns the boards owned by one user.
func (s *Store) ListBoards(ctx context.Context, userID uint) ([]models.Board, error) {
	var boards []models.Board
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&boards).Error; err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

func (s *Store) CreateBoard(ctx context.Context, board *models.Board) error {
	if err := s.db.WithContext(ctx).Create(board).Error; err != nil {
		return fmt.Errorf("create board: %w", err)
	}
	return nil
}

func (s *Store) UpdateBoard(ctx context.Context, id uint, title, description *string) (*models.Board, error) {
	board, err := s.GetBoard(ctx, id)
	if err != nil || board == nil {
		return board, err
	}

	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if description != nil {
		updates["description"] = *description
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(board).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update board: %w", err)
		}
	}
	return board, nil
}

// DeleteBoard removes a board together with all of its tasks in one
// transaction. Partial deletion must never be observable.
func (s *Store) DeleteBoard(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Board{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	return nil
}

// ---------- tasks ----------

func (s *Store) GetTask(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &task, nil
}

// ListTasks returns the tasks on one board.
func (s *Store) ListTasks(ctx context.Context, boardID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *Store) CreateTask(ctx context.Context, task *models.Task) error {
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (s *Store) UpdateTask(ctx context.Context, id uint, title *string, weight *int) (*models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil || task == nil {
		return task, err
	}

	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if weight != nil {
		updates["weight"] = *weight
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(task).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update task: %w", err)
		}
	}
	return task, nil
}

// MoveTask reassigns a task to another board. The owning user does not
// change.
func (s *Store) MoveTask(ctx context.Context, id, boardID uint) (*models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil || task == nil {
		return task, err
	}
	if err := s.db.WithContext(ctx).Model(task).Update("board_id", boardID).Error; err != nil {
		return nil, fmt.Errorf("move task: %w", err)
	}
	return task, nil
}

func (s *Store) DeleteTask(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

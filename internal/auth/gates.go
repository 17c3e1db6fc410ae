package auth

import "context"

// Gates are the per-route authorization decisions, evaluated strictly
// after Resolve succeeds and before the protected handler runs. Each gate
// is a pure predicate over the resolved identity plus at most one resource
// lookup; gates never mutate state and never perform the protected action.
type Gates struct {
	store ResourceStore
}

func NewGates(store ResourceStore) *Gates {
	return &Gates{store: store}
}

// RequireAdmin allows only admin identities.
func (g *Gates) RequireAdmin(id Identity) error {
	if id.IsAdmin {
		return nil
	}
	return forbidden()
}

// RequireSelfOrAdmin allows admins, or a caller acting on their own user
// record. The admin check runs first so no lookup is ever needed for it.
func (g *Gates) RequireSelfOrAdmin(id Identity, targetUserID uint) error {
	if id.IsAdmin {
		return nil
	}
	if id.UserID == targetUserID {
		return nil
	}
	return forbidden()
}

// RequireBoardOwnerOrAdmin allows admins unconditionally, without touching
// the store. For everyone else the board is fetched: a missing board is a
// 404 before any ownership decision, a foreign board is a 403.
func (g *Gates) RequireBoardOwnerOrAdmin(ctx context.Context, id Identity, boardID uint) error {
	if id.IsAdmin {
		return nil
	}

	board, err := g.store.GetBoard(ctx, boardID)
	if err != nil {
		return storage(err)
	}
	if board == nil {
		return notFound("Board not found")
	}
	if board.UserID == id.UserID {
		return nil
	}
	return forbidden()
}

// RequireTaskOwnerOrAdmin is the task counterpart of the board gate,
// deciding on Task.UserID.
func (g *Gates) RequireTaskOwnerOrAdmin(ctx context.Context, id Identity, taskID uint) error {
	if id.IsAdmin {
		return nil
	}

	task, err := g.store.GetTask(ctx, taskID)
	if err != nil {
		return storage(err)
	}
	if task == nil {
		return notFound("Task not found")
	}
	if task.UserID == id.UserID {
		return nil
	}
	return forbidden()
}

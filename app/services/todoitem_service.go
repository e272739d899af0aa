package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-api/app/models"
)

// ErrNotFound is returned when the requested TODO item does not exist.
var ErrNotFound = errors.New("todo item not found")

const todoItemColumns = "id, name, completed, todolist_id, created, modified"

// TodoItemService handles TODO-item operations.
type TodoItemService struct {
	db *sql.DB
}

// NewTodoItemService creates a new instance of TodoItemService.
func NewTodoItemService(db *sql.DB) *TodoItemService {
	return &TodoItemService{db: db}
}

// GetAll retrieves every item belonging to the given list, newest first.
// The id is the tie-breaker for items created within the same timestamp.
func (s *TodoItemService) GetAll(ctx context.Context, todolistID int64) ([]models.TodoItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+todoItemColumns+" FROM todoitems WHERE todolist_id = ? ORDER BY created DESC, id DESC",
		todolistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.TodoItem{}
	for rows.Next() {
		var item models.TodoItem
		if err := scanTodoItem(rows.Scan, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByID retrieves a single item by its id, regardless of owning list.
func (s *TodoItemService) GetByID(ctx context.Context, id int64) (*models.TodoItem, error) {
	item := &models.TodoItem{}
	err := scanTodoItem(s.db.QueryRowContext(ctx,
		"SELECT "+todoItemColumns+" FROM todoitems WHERE id = ?", id).Scan, item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Create inserts a new item attached to the given list.
func (s *TodoItemService) Create(ctx context.Context, name string, completed bool, todolistID int64) (*models.TodoItem, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO todoitems (name, completed, todolist_id) VALUES (?, ?, ?)",
		name, completed, todolistID)
	if err != nil {
		return nil, fmt.Errorf("create todo item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Update applies a partial merge to an existing item. A nil field means
// "not provided" and leaves the current value alone; a provided field
// overwrites, including completed going back to false. The modified
// timestamp is refreshed only when something actually changed.
func (s *TodoItemService) Update(ctx context.Context, id int64, name *string, completed *bool) (*models.TodoItem, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if name != nil && *name != item.Name {
		item.Name = *name
		changed = true
	}
	if completed != nil && *completed != item.Completed {
		item.Completed = *completed
		changed = true
	}
	if !changed {
		return item, nil
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE todoitems SET name = ?, completed = ?, modified = CURRENT_TIMESTAMP WHERE id = ?",
		item.Name, item.Completed, id)
	if err != nil {
		return nil, fmt.Errorf("update todo item %d: %w", id, err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes an item permanently.
func (s *TodoItemService) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM todoitems WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete todo item %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTodoItem(scan func(dest ...any) error, item *models.TodoItem) error {
	return scan(&item.ID, &item.Name, &item.Completed, &item.TodoListID, &item.Created, &item.Modified)
}

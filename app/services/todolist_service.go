package services

import (
	"context"
	"database/sql"
	"fmt"

	"todo-api/app/models"
)

// TodoListService handles TODO-list operations.
type TodoListService struct {
	db *sql.DB
}

// NewTodoListService creates a new instance of TodoListService.
func NewTodoListService(db *sql.DB) *TodoListService {
	return &TodoListService{db: db}
}

// GetDefaultList returns the list with the given name, creating it first if
// it does not exist yet. The UNIQUE constraint on todolists.name makes
// concurrent first callers converge on a single row.
func (s *TodoListService) GetDefaultList(ctx context.Context, name string) (*models.TodoList, error) {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO todolists (name) VALUES (?) ON CONFLICT (name) DO NOTHING", name)
	if err != nil {
		return nil, fmt.Errorf("create default list: %w", err)
	}

	list := &models.TodoList{}
	err = s.db.QueryRowContext(ctx,
		"SELECT id, name, created, modified FROM todolists WHERE name = ?", name).
		Scan(&list.ID, &list.Name, &list.Created, &list.Modified)
	if err != nil {
		return nil, fmt.Errorf("load default list: %w", err)
	}
	return list, nil
}

// GetAll retrieves every TODO list.
func (s *TodoListService) GetAll(ctx context.Context) ([]models.TodoList, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created, modified FROM todolists ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []models.TodoList
	for rows.Next() {
		var l models.TodoList
		if err := rows.Scan(&l.ID, &l.Name, &l.Created, &l.Modified); err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

package models

import "time"

// TodoList is a named container of TODO items. Only the configured default
// list is ever used by the API, but the model allows several in case we want
// to manage multiple lists instead of a master list.
type TodoList struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// TodoItem is a single entry of a TODO list. Each item belongs to exactly
// one list.
type TodoItem struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Completed  bool      `json:"completed"`
	TodoListID int64     `json:"todolist_id"`
	Created    time.Time `json:"created"`
	Modified   time.Time `json:"modified"`
}

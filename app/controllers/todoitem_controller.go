package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"unicode/utf8"

	"todo-api/app/services"

	"github.com/gorilla/mux"
)

const minNameLength = 3

// todoItemRequest is the body accepted on POST and PUT. Pointer fields keep
// "absent" distinct from "provided", so a PUT can set completed back to
// false without a missing field being mistaken for one.
type todoItemRequest struct {
	Name      *string `json:"name"`
	Completed *bool   `json:"completed"`
}

// errorResponse is the envelope for all error payloads. Message is either a
// plain string or a {field: text} map for validation failures.
type errorResponse struct {
	Message any `json:"message"`
}

// TodoItemController handles HTTP requests for TODO items.
type TodoItemController struct {
	Items *services.TodoItemService
	Lists *services.TodoListService

	// DefaultListName is the name of the list every item operation is
	// scoped to; the API does not expose list selection.
	DefaultListName string
}

// NewTodoItemController creates a new TodoItemController.
func NewTodoItemController(items *services.TodoItemService, lists *services.TodoListService, defaultListName string) *TodoItemController {
	return &TodoItemController{Items: items, Lists: lists, DefaultListName: defaultListName}
}

// GetTodoItems handles GET /api/todoitems.
func (c *TodoItemController) GetTodoItems(w http.ResponseWriter, r *http.Request) {
	list, err := c.Lists.GetDefaultList(r.Context(), c.DefaultListName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	items, err := c.Items.GetAll(r.Context(), list.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetTodoItemByID handles GET /api/todoitems/{todoitemID}.
func (c *TodoItemController) GetTodoItemByID(w http.ResponseWriter, r *http.Request) {
	id, ok := todoItemID(w, r)
	if !ok {
		return
	}

	item, err := c.Items.GetByID(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CreateTodoItem handles POST /api/todoitems. The new item is always
// attached to the default list; a client-supplied list id is ignored.
func (c *TodoItemController) CreateTodoItem(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTodoItemRequest(w, r)
	if !ok {
		return
	}
	if req.Name == nil {
		writeFieldError(w, "name", "is required")
		return
	}
	if !validateName(w, *req.Name) {
		return
	}

	list, err := c.Lists.GetDefaultList(r.Context(), c.DefaultListName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	newItem, err := c.Items.Create(r.Context(), *req.Name, completed, list.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, newItem)
}

// UpdateTodoItem handles PUT /api/todoitems/{todoitemID}.
func (c *TodoItemController) UpdateTodoItem(w http.ResponseWriter, r *http.Request) {
	id, ok := todoItemID(w, r)
	if !ok {
		return
	}
	req, ok := decodeTodoItemRequest(w, r)
	if !ok {
		return
	}
	if req.Name != nil && !validateName(w, *req.Name) {
		return
	}

	item, err := c.Items.Update(r.Context(), id, req.Name, req.Completed)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteTodoItem handles DELETE /api/todoitems/{todoitemID}.
func (c *TodoItemController) DeleteTodoItem(w http.ResponseWriter, r *http.Request) {
	id, ok := todoItemID(w, r)
	if !ok {
		return
	}

	if err := c.Items.Delete(r.Context(), id); err != nil {
		writeLookupError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MissingTodoItemID handles PUT and DELETE on the collection root, where an
// item id is required.
func (c *TodoItemController) MissingTodoItemID(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "You must provide a valid ID")
}

func todoItemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["todoitemID"], 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "You must provide a valid ID")
		return 0, false
	}
	return id, true
}

func decodeTodoItemRequest(w http.ResponseWriter, r *http.Request) (*todoItemRequest, bool) {
	req := &todoItemRequest{}
	err := json.NewDecoder(r.Body).Decode(req)
	// An empty body is an empty request; missing fields are reported by
	// validation, not the decoder.
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}
	return req, true
}

func validateName(w http.ResponseWriter, name string) bool {
	if utf8.RuneCountInString(name) < minNameLength {
		writeFieldError(w, "name", "must be at least 3 characters")
		return false
	}
	return true
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNotFound) {
		writeError(w, http.StatusNotFound, "The requested TODO item does not exist")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func writeFieldError(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: map[string]string{field: message}})
}

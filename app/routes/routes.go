package routes

import (
	"net/http"
	"todo-api/app/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application. Verbs that are not
// registered on a matching path get a 405 from mux itself. PUT and DELETE on
// the collection root are registered explicitly because they are valid verbs
// here that merely lack the required id, which is a 404, not a 405.
func RegisterRoutes(router *mux.Router, todoItemController *controllers.TodoItemController) {
	router.HandleFunc("/api/todoitems", todoItemController.GetTodoItems).Methods(http.MethodGet)
	router.HandleFunc("/api/todoitems", todoItemController.CreateTodoItem).Methods(http.MethodPost)
	router.HandleFunc("/api/todoitems", todoItemController.MissingTodoItemID).Methods(http.MethodPut, http.MethodDelete)
	router.HandleFunc("/api/todoitems/{todoitemID:[0-9]+}", todoItemController.GetTodoItemByID).Methods(http.MethodGet)
	router.HandleFunc("/api/todoitems/{todoitemID:[0-9]+}", todoItemController.UpdateTodoItem).Methods(http.MethodPut)
	router.HandleFunc("/api/todoitems/{todoitemID:[0-9]+}", todoItemController.DeleteTodoItem).Methods(http.MethodDelete)
}

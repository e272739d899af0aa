package main

import (
	"context"
	"net/http"
	"os"

	"todo-api/app/config"
	"todo-api/app/controllers"
	"todo-api/app/routes"
	"todo-api/app/services"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "todo",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "err", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db, err := config.OpenDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open database", "err", err)
	}
	defer db.Close()

	todoListService := services.NewTodoListService(db)
	todoItemService := services.NewTodoItemService(db)

	// Seed the default list so the first request does not race to create it.
	ctx := context.Background()
	defaultList, err := todoListService.GetDefaultList(ctx, cfg.DefaultTodoListName)
	if err != nil {
		logger.Fatal("Failed to resolve default list", "err", err)
	}
	if lists, err := todoListService.GetAll(ctx); err == nil {
		logger.Debug("Loaded TODO lists", "count", len(lists), "default_id", defaultList.ID)
	}

	todoItemController := controllers.NewTodoItemController(todoItemService, todoListService, cfg.DefaultTodoListName)

	router := mux.NewRouter()
	router.Use(routes.RequestLogger(logger))
	routes.RegisterRoutes(router, todoItemController)

	logger.Info("Server is running", "env", cfg.Env, "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Fatal("Server stopped", "err", err)
	}
}

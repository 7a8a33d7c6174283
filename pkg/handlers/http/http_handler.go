package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Workato
	CallWorkatoHandler Handler

	// Orchestrator folders
	GetAllFoldersHandler   Handler
	CreateNewFolderHandler Handler

	GetVersionHandler Handler
}

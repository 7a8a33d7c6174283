package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/kuokgroup/automation-bridge/pkg/common"
	handlers "github.com/kuokgroup/automation-bridge/pkg/handlers/http"
	"github.com/kuokgroup/automation-bridge/pkg/middleware"
)

const (
	HealthPath          = "/health"
	PingPath            = "/__/ping"
	VersionPath         = "/version"
	DocsPath            = "/docs/*"
	SwaggerSpecPath     = "/swagger.json"
	CallWorkatoPath     = "/callWorkato"
	GetAllFoldersPath   = "/getAllFolders"
	CreateNewFolderPath = "/createNewFolder"
)

type bridgeRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	swaggerFile         string
}

// NewBridgeRouter registers the forwarding endpoints, both bare and under
// the functions prefix, plus health, version and docs routes. An empty
// swaggerFile disables the docs routes.
func NewBridgeRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	swaggerFile string,
) ServerRouter {
	return &bridgeRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		swaggerFile:         swaggerFile,
	}
}

func (r *bridgeRouter) BuildRoutes(router *fiber.App) error {
	t := r.handlerTransport
	if t.CallWorkatoHandler == nil || t.GetAllFoldersHandler == nil || t.CreateNewFolderHandler == nil {
		return ErrMissingHandler
	}

	if r.middlewareTransport != nil {
		if mw := r.middlewareTransport.GetMiddlewares(); len(mw) > 0 {
			router.Use(mw...)
		}
	}

	router.Get(HealthPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.Get(PingPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"message": "pong",
		})
	})

	if t.GetVersionHandler != nil {
		router.Get(VersionPath, t.GetVersionHandler.Handle)
	}

	if r.swaggerFile != "" {
		router.Static(SwaggerSpecPath, r.swaggerFile)
		router.Get(DocsPath, swagger.New(swagger.Config{
			URL: SwaggerSpecPath,
		}))
	}

	for _, prefix := range []string{"", common.FunctionsPrefix} {
		router.Post(prefix+CallWorkatoPath, t.CallWorkatoHandler.Handle)
		router.Get(prefix+GetAllFoldersPath, t.GetAllFoldersHandler.Handle)
		router.Post(prefix+CreateNewFolderPath, t.CreateNewFolderHandler.Handle)
	}

	router.Use(func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return ctx.Status(http.StatusNotFound).SendString(fmt.Sprintf("no route for %s %s", ctx.Method(), ctx.Path()))
	})

	return nil
}

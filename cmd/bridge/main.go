package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kuokgroup/automation-bridge/pkg/app/forwarder"
	"github.com/kuokgroup/automation-bridge/pkg/config"
	handlers "github.com/kuokgroup/automation-bridge/pkg/handlers/http"
	"github.com/kuokgroup/automation-bridge/pkg/infra/httpx"
	infraLogger "github.com/kuokgroup/automation-bridge/pkg/infra/logger"
	"github.com/kuokgroup/automation-bridge/pkg/middleware"
	"github.com/kuokgroup/automation-bridge/pkg/server"
	"github.com/kuokgroup/automation-bridge/pkg/version"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, closeLogger, err := infraLogger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogger()

	logger.WithField("version", version.Version).Info("starting automation bridge")
	for _, name := range cfg.MissingCredentials() {
		logger.WithField("variable", name).Warn("credential is not set, outbound calls will carry an empty token")
	}

	client := httpx.NewFastHTTPClient(
		httpx.WithTimeout(cfg.Outbound.Timeout),
		httpx.WithInsecureSkipVerify(cfg.Outbound.InsecureSkipVerify),
		httpx.WithUserAgent(cfg.Outbound.UserAgent),
		httpx.WithMaxConnsPerHost(cfg.Outbound.MaxConnsPerHost),
		httpx.WithMaxResponseBodySize(cfg.Outbound.MaxResponseBytes),
	)

	createFolderProfile, err := forwarder.CreateFolderProfile(cfg.UiPath)
	if err != nil {
		logger.Fatalf("failed to build folder profile: %v", err)
	}

	// forwarders
	callWorkato := forwarder.New(forwarder.WorkatoProfile(cfg.Workato), client, logger)
	getAllFolders := forwarder.New(forwarder.ListFoldersProfile(cfg.UiPath), client, logger)
	createNewFolder := forwarder.New(createFolderProfile, client, logger)

	//middleware
	middlewareTransport := &middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(logger),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		CallWorkatoHandler:     handlers.NewForwardHandler(logger, callWorkato),
		GetAllFoldersHandler:   handlers.NewForwardHandler(logger, getAllFolders),
		CreateNewFolderHandler: handlers.NewForwardHandler(logger, createNewFolder),
		GetVersionHandler:      handlers.NewGetVersionHandler(logger),
	}

	docs := swaggerFile
	if _, err := os.Stat(docs); err != nil {
		logger.WithField("file", docs).Debug("swagger file not found, docs routes disabled")
		docs = ""
	}

	srv, err := server.NewBridgeServer(server.BridgeServerDI{
		Config:              cfg,
		Logger:              logger,
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		SwaggerFile:         docs,
	})
	if err != nil {
		logger.Fatalf("failed to initialize server: %v", err)
	}

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		closeLogger()
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}

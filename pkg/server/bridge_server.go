package server

import (
	"errors"

	"github.com/kuokgroup/automation-bridge/pkg/config"
	handlers "github.com/kuokgroup/automation-bridge/pkg/handlers/http"
	"github.com/kuokgroup/automation-bridge/pkg/middleware"
	"github.com/kuokgroup/automation-bridge/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	BridgeServerDI struct {
		Config              *config.Config
		Logger              *logrus.Logger
		MiddlewareTransport *middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		SwaggerFile         string
	}
	BridgeServer struct {
		*BaseServer
	}
)

func NewBridgeServer(di BridgeServerDI) (*BridgeServer, error) {
	base, err := NewBaseServer(di.Config, di.Logger).WithRouters(
		router.NewBridgeRouter(di.MiddlewareTransport, di.HandlerTransport, di.SwaggerFile),
	)
	if err != nil {
		return nil, err
	}
	return &BridgeServer{BaseServer: base}, nil
}

func (s *BridgeServer) Run() error {
	s.setupMetricsEndpoint()

	addr := s.Config.ListenAddr()
	s.Logger.WithField("addr", addr).Info("starting bridge server")
	return s.Router.Listen(addr)
}

func (s *BridgeServer) Shutdown() error {
	return errors.Join(s.Router.Shutdown(), s.shutdownMetrics())
}

package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport holds the middlewares applied, in order, to every bridge route.
type Transport struct {
	PanicRecoverMiddleware Middleware
	RequestIDMiddleware    Middleware
	MetricsMiddleware      Middleware
}

func (t *Transport) GetMiddlewares() []interface{} {
	var handlers []interface{}
	for _, m := range []Middleware{t.PanicRecoverMiddleware, t.RequestIDMiddleware, t.MetricsMiddleware} {
		if m == nil {
			continue
		}
		handlers = append(handlers, m.Middleware())
	}
	return handlers
}

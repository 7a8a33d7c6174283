package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kuokgroup/automation-bridge/pkg/common"
	"github.com/sirupsen/logrus"
)

const maxRequestIDLength = 128

type requestIDMiddleware struct {
	logger *logrus.Logger
}

// NewRequestIDMiddleware echoes the caller's X-Request-Id, or assigns a new
// UUID, and exposes it to handlers through c.Locals.
func NewRequestIDMiddleware(logger *logrus.Logger) Middleware {
	return &requestIDMiddleware{logger: logger}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			id, err := uuid.NewV7()
			if err != nil {
				m.logger.WithError(err).Debug("failed to generate UUIDv7, falling back to v4")
				id = uuid.New()
			}
			requestID = id.String()
		}

		c.Locals(string(common.RequestIDContextKey), requestID)
		c.Set(common.RequestIDHeader, requestID)
		return c.Next()
	}
}

// RequestID returns the id assigned by the request id middleware.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(string(common.RequestIDContextKey)).(string) //nolint:errcheck
	return id
}

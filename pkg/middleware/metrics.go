package middleware

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kuokgroup/automation-bridge/pkg/common"
	"github.com/kuokgroup/automation-bridge/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		prometheus.RequestTotal.WithLabelValues(
			endpointLabel(c),
			c.Method(),
			GetStatusClass(status),
		).Inc()

		return err
	}
}

func endpointLabel(c *fiber.Ctx) string {
	if endpoint, ok := c.Locals(string(common.EndpointContextKey)).(string); ok && endpoint != "" {
		return endpoint
	}
	return "other"
}

// GetStatusClass returns the class of a status code, e.g. "2xx".
func GetStatusClass(status int) string {
	if status < 100 || status > 599 {
		return "5xx"
	}
	return fmt.Sprintf("%dxx", status/100)
}

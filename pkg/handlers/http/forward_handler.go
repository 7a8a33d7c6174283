package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kuokgroup/automation-bridge/pkg/app/forwarder"
	"github.com/kuokgroup/automation-bridge/pkg/common"
	"github.com/kuokgroup/automation-bridge/pkg/domain/forwarding"
	"github.com/kuokgroup/automation-bridge/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type forwardHandler struct {
	logger    *logrus.Logger
	forwarder *forwarder.Forwarder
}

// NewForwardHandler serves one forwarding endpoint. The three public
// endpoints differ only by the forwarder profile they are given.
func NewForwardHandler(logger *logrus.Logger, fwd *forwarder.Forwarder) Handler {
	return &forwardHandler{
		logger:    logger,
		forwarder: fwd,
	}
}

// Handle @Summary Forward a request to the configured external service
// @Description callWorkato relays {"Message": string} to the automation recipe.
// @Description getAllFolders lists the orchestrator folders.
// @Description createNewFolder requires {"Message": string} and creates a folder from the fixed template.
// @Tags Forwarding
// @Accept json
// @Produce json,plain
// @Success 200 {string} string "Relayed external response"
// @Failure 400 {string} string "Invalid JSON or missing Message"
// @Failure 500 {string} string "External API error"
// @Router /callWorkato [post]
// @Router /getAllFolders [get]
// @Router /createNewFolder [post]
func (h *forwardHandler) Handle(c *fiber.Ctx) error {
	profile := h.forwarder.Profile()
	c.Locals(string(common.EndpointContextKey), profile.Name)

	log := h.logger.WithFields(logrus.Fields{
		"endpoint":   profile.Name,
		"request_id": middleware.RequestID(c),
	})
	log.Info("processing request")

	resp, err := h.forwarder.Forward(c.UserContext(), c.Body())
	if err != nil {
		status, text := h.forwarder.Render(err)
		log.WithError(err).WithFields(logrus.Fields{
			"kind":   forwarding.KindOf(err).String(),
			"status": status,
		}).Error("request failed")

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(status).SendString(text)
	}

	c.Set(fiber.HeaderContentType, resp.ContentType)
	return c.Status(resp.StatusCode).Send(resp.Body)
}

package handlers

import (
	"encoding/json"

	"github.com/based-profile/backend/internal/http/dto"
	"github.com/based-profile/backend/internal/services"
	"github.com/based-profile/backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	assembler services.ProfileAssembler
	log       *zap.Logger
}

func NewProfileHandler(assembler services.ProfileAssembler, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{assembler: assembler, log: log}
}

// Resolve assembles the profile for the posted session context. An empty
// body is an empty context.
// POST /api/v1/profile/resolve
func (h *ProfileHandler) Resolve(c *fiber.Ctx) error {
	var sc session.Context
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &sc); err != nil {
			h.log.Debug("invalid session context", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid session context"})
		}
	}

	profile := h.assembler.Assemble(c.UserContext(), &sc)
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

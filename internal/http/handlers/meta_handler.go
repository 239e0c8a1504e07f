package handlers

import (
	"sort"

	"github.com/based-profile/backend/internal/config"
	"github.com/based-profile/backend/internal/http/dto"
	"github.com/based-profile/backend/internal/scoring"
	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct {
	cfg *config.Config
}

func NewMetaHandler(cfg *config.Config) *MetaHandler {
	return &MetaHandler{cfg: cfg}
}

type MetaRole struct {
	Role string `json:"role"`
	Rank int    `json:"rank"`
}

type MetaStarLevel struct {
	scoring.StarLevel
	Label string `json:"label"`
}

func (h *MetaHandler) GetStarLevels(c *fiber.Ctx) error {
	levels := make([]MetaStarLevel, 0, len(scoring.StarLevels))
	for _, s := range scoring.StarLevels {
		levels = append(levels, MetaStarLevel{StarLevel: s, Label: s.Label()})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: levels})
}

// GetRoles lists the community role hierarchy, highest first.
func (h *MetaHandler) GetRoles(c *fiber.Ctx) error {
	roles := make([]MetaRole, 0, len(scoring.RoleRank))
	for role, rank := range scoring.RoleRank {
		roles = append(roles, MetaRole{Role: role, Rank: rank})
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Rank > roles[j].Rank })
	return c.JSON(dto.SuccessResponse{OK: true, Data: roles})
}

// ConfigCheck reports whether the directory credential is present without
// revealing it.
// GET /api/config-check
func (h *MetaHandler) ConfigCheck(c *fiber.Ctx) error {
	return c.JSON(dto.ConfigCheckResponse{
		APIKeyExists:  h.cfg.HasDirectoryCredential(),
		APIKeyLength:  len(h.cfg.DirectoryAPIKey),
		APIKeyPreview: h.cfg.DirectoryKeyPreview(),
	})
}

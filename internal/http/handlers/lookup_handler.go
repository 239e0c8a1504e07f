package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/based-profile/backend/internal/directory"
	"github.com/based-profile/backend/internal/http/dto"
	"github.com/based-profile/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LookupHandler proxies single directory lookups for internal callers.
type LookupHandler struct {
	directory services.DirectoryLookup
	log       *zap.Logger
	now       func() time.Time
}

func NewLookupHandler(directory services.DirectoryLookup, log *zap.Logger) *LookupHandler {
	return &LookupHandler{directory: directory, log: log, now: time.Now}
}

// LookupByID returns the directory user for a fid.
// GET /lookup-by-id?id=
func (h *LookupHandler) LookupByID(c *fiber.Ctx) error {
	raw := c.Query("id", c.Query("fid"))
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id parameter is required"})
	}
	fid, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || fid <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id must be a positive integer"})
	}

	user, err := h.directory.LookupByID(c.UserContext(), fid)
	if err != nil {
		return h.lookupError(c, err, zap.Int64("fid", fid))
	}

	resp := dto.NewDirectoryUserResponse(user, h.now())
	resp.EthAddresses = user.EthAddresses()
	resp.SolAddresses = user.SolAddresses()
	return c.JSON(resp)
}

// LookupByAddress returns the directory user that verified an address.
// GET /lookup-by-address?address=
func (h *LookupHandler) LookupByAddress(c *fiber.Ctx) error {
	address := c.Query("address")
	if address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "address parameter is required"})
	}

	user, err := h.directory.LookupByAddress(c.UserContext(), address)
	if err != nil {
		return h.lookupError(c, err, zap.String("address", address))
	}
	return c.JSON(dto.NewDirectoryUserResponse(user, h.now()))
}

func (h *LookupHandler) lookupError(c *fiber.Ctx, err error, field zap.Field) error {
	switch {
	case errors.Is(err, directory.ErrNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "API key not configured",
			Message: "Please set NEYNAR_API_KEY in the service environment",
		})
	case errors.Is(err, directory.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "User not found"})
	default:
		h.log.Error("directory lookup failed", field, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Failed to fetch user data",
			Message: err.Error(),
		})
	}
}

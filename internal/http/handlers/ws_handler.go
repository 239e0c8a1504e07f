package handlers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/based-profile/backend/internal/http/dto"
	"github.com/based-profile/backend/internal/services"
	"github.com/based-profile/backend/internal/session"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProfileStream pushes profile state over a websocket. Every text message
// from the client is a new session context.
type ProfileStream struct {
	assembler services.ProfileAssembler
	log       *zap.Logger
}

func NewProfileStream(assembler services.ProfileAssembler, log *zap.Logger) *ProfileStream {
	return &ProfileStream{assembler: assembler, log: log}
}

// WSUpgradeMiddleware checks for websocket upgrade
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (h *ProfileStream) HandleWS(conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())

	var writeMu sync.Mutex
	send := func(v any) {
		data, err := json.Marshal(v)
		if err != nil {
			h.log.Error("failed to encode ws message", zap.Error(err))
			return
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}

	tracker := services.NewProfileTracker(h.assembler, func(st services.ProfileState) {
		send(st)
	})
	send(tracker.State())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var sc session.Context
		if err := json.Unmarshal(msg, &sc); err != nil {
			send(dto.ErrorResponse{Error: "invalid session context"})
			continue
		}
		tracker.Update(ctx, &sc)
	}

	cancel()
	tracker.Wait()
}

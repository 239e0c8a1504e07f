package events

import (
	"context"

	"github.com/based-profile/backend/internal/models"
)

// Event types
const (
	EventProfileResolved = "profile_resolved"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}

// NewProfileResolved summarizes a resolved profile for downstream consumers.
func NewProfileResolved(p *models.ResolvedProfile) Event {
	return Event{
		Type: EventProfileResolved,
		Payload: map[string]any{
			"fid":             p.FID,
			"display_name":    p.DisplayName,
			"composite_score": p.CompositeScore,
			"community_role":  p.CommunityRole,
			"star_level":      p.StarLevel,
			"wallet_count":    len(p.Wallets),
		},
	}
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, Event) error { return nil }

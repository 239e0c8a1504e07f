package services

import (
	"context"
	"sync"

	"github.com/based-profile/backend/internal/models"
	"github.com/based-profile/backend/internal/session"
)

// ProfileState is what the rendering layer observes: loading until the first
// resolution completes, then the most recently completed profile.
type ProfileState struct {
	Ready   bool                    `json:"ready"`
	Profile *models.ResolvedProfile `json:"profile,omitempty"`
}

// ProfileTracker runs one resolution per session context change. In-flight
// resolutions are never cancelled by newer ones; whichever finishes last
// wins.
type ProfileTracker struct {
	assembler ProfileAssembler
	onChange  func(ProfileState)

	mu    sync.Mutex
	state ProfileState
	wg    sync.WaitGroup
}

// NewProfileTracker creates a tracker. onChange may be nil; when set it is
// called once per completed resolution, serialized with state updates.
func NewProfileTracker(assembler ProfileAssembler, onChange func(ProfileState)) *ProfileTracker {
	return &ProfileTracker{assembler: assembler, onChange: onChange}
}

// Update starts resolving sc and returns immediately.
func (t *ProfileTracker) Update(ctx context.Context, sc *session.Context) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		p := t.assembler.Assemble(ctx, sc)

		t.mu.Lock()
		defer t.mu.Unlock()
		t.state = ProfileState{Ready: true, Profile: p}
		if t.onChange != nil {
			t.onChange(t.state)
		}
	}()
}

func (t *ProfileTracker) State() ProfileState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Wait blocks until every started resolution has completed.
func (t *ProfileTracker) Wait() {
	t.wg.Wait()
}

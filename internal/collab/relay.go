package collab

import (
	"context"
	"encoding/json"
	"fmt"

	"notehub/internal/model"
)

// Relay applies authorized content updates and propagates them. Persistence
// and broadcast are strictly ordered: peers only ever see content that has
// been written, and a failed write reaches nobody but the initiator.
type Relay struct {
	registry *Registry
	store    DocumentStore
	metrics  *Metrics
}

// NewRelay constructs a Relay. metrics may be nil.
func NewRelay(registry *Registry, store DocumentStore, metrics *Metrics) *Relay {
	return &Relay{registry: registry, store: store, metrics: metrics}
}

// Apply persists newContent as the document's full content and notifies every
// other room member. The sender's role is the one cached at join time; only
// editors may mutate. Two racing editors are resolved last-write-wins; each
// editor's peers see exactly the content that editor wrote, and whichever
// write completes last is the persisted state.
func (rl *Relay) Apply(ctx context.Context, sender Sender, documentID string, newContent json.RawMessage) error {
	role, joined := rl.registry.RoleOf(documentID, sender.ID())
	if !joined || role != model.RoleEditor {
		return ErrForbidden
	}

	if len(newContent) == 0 || !json.Valid(newContent) {
		return fmt.Errorf("%w: content is not valid JSON", ErrInvalidRequest)
	}

	if err := rl.store.Write(ctx, documentID, newContent); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	payload := ContentUpdatedPayload{DocumentID: documentID, Content: newContent}
	for _, peer := range rl.registry.MembersOf(documentID, sender.ID()) {
		// Best effort: a peer racing toward disconnect is dropped from the
		// registry by its own read loop; a failed Send here is not an error
		// of the update.
		_ = peer.Send(EventContentUpdated, payload)
	}
	if rl.metrics != nil {
		rl.metrics.Broadcasts.Inc()
	}
	return nil
}

package collab

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/internal/model"
)

func TestRelayEditorUpdateReachesPeersNotSelf(t *testing.T) {
	reg := NewRegistry()
	store := newFakeStore()
	store.docs[docD1] = Document{ID: docD1}
	relay := NewRelay(reg, store, nil)

	a := newFakeSender("a") // editor, originator
	b := newFakeSender("b")
	c := newFakeSender("c")
	reg.Join(docD1, a, model.RoleEditor)
	reg.Join(docD1, b, model.RoleViewer)
	reg.Join(docD1, c, model.RoleEditor)

	content := json.RawMessage(`{"text":"hello"}`)
	err := relay.Apply(context.Background(), a, docD1, content)
	require.NoError(t, err)

	// Persisted content equals the new content.
	assert.JSONEq(t, `{"text":"hello"}`, string(store.persisted(docD1)))

	// Every other member got exactly one content-updated; the initiator got
	// no echo.
	for _, peer := range []*fakeSender{b, c} {
		events := peer.recorded()
		require.Len(t, events, 1)
		assert.Equal(t, EventContentUpdated, events[0].Event)
		payload := events[0].Payload.(ContentUpdatedPayload)
		assert.Equal(t, docD1, payload.DocumentID)
		assert.JSONEq(t, `{"text":"hello"}`, string(payload.Content))
	}
	assert.Empty(t, a.recorded())
}

func TestRelayViewerIsForbidden(t *testing.T) {
	reg := NewRegistry()
	store := newFakeStore()
	store.docs[docD1] = Document{ID: docD1}
	store.content[docD1] = json.RawMessage(`{"text":"original"}`)
	relay := NewRelay(reg, store, nil)

	a := newFakeSender("a")
	c := newFakeSender("c") // viewer
	reg.Join(docD1, a, model.RoleEditor)
	reg.Join(docD1, c, model.RoleViewer)

	err := relay.Apply(context.Background(), c, docD1, json.RawMessage(`{"text":"hack"}`))
	assert.ErrorIs(t, err, ErrForbidden)

	// No mutation, no broadcast.
	assert.JSONEq(t, `{"text":"original"}`, string(store.persisted(docD1)))
	assert.Empty(t, a.recorded())
}

func TestRelayUnjoinedIsForbidden(t *testing.T) {
	reg := NewRegistry()
	store := newFakeStore()
	relay := NewRelay(reg, store, nil)

	stranger := newFakeSender("x")
	err := relay.Apply(context.Background(), stranger, docD1, json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRelayRejectsInvalidContent(t *testing.T) {
	reg := NewRegistry()
	store := newFakeStore()
	relay := NewRelay(reg, store, nil)

	a := newFakeSender("a")
	reg.Join(docD1, a, model.RoleEditor)

	err := relay.Apply(context.Background(), a, docD1, json.RawMessage(`{"broken`))
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, store.persisted(docD1))
}

func TestRelayPersistenceFailureSkipsBroadcast(t *testing.T) {
	reg := NewRegistry()
	store := newFakeStore()
	store.docs[docD1] = Document{ID: docD1}
	store.writeErr = errors.New("db down")
	relay := NewRelay(reg, store, nil)

	a := newFakeSender("a")
	b := newFakeSender("b")
	reg.Join(docD1, a, model.RoleEditor)
	reg.Join(docD1, b, model.RoleViewer)

	err := relay.Apply(context.Background(), a, docD1, json.RawMessage(`{"text":"lost"}`))
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, b.recorded())
	assert.Nil(t, store.persisted(docD1))
}

func TestRelayAfterLeaveNoDelivery(t *testing.T) {
	reg := NewRegistry()
	store := newFakeStore()
	store.docs[docD1] = Document{ID: docD1}
	relay := NewRelay(reg, store, nil)

	a := newFakeSender("a")
	b := newFakeSender("b")
	reg.Join(docD1, a, model.RoleEditor)
	reg.Join(docD1, b, model.RoleViewer)
	reg.Leave(b)

	err := relay.Apply(context.Background(), a, docD1, json.RawMessage(`{"v":1}`))
	require.NoError(t, err)
	assert.Empty(t, b.recorded())
}

func TestRelayPeerSendFailureDoesNotFailUpdate(t *testing.T) {
	reg := NewRegistry()
	store := newFakeStore()
	store.docs[docD1] = Document{ID: docD1}
	relay := NewRelay(reg, store, nil)

	a := newFakeSender("a")
	b := newFakeSender("b")
	b.fail = true
	reg.Join(docD1, a, model.RoleEditor)
	reg.Join(docD1, b, model.RoleViewer)

	err := relay.Apply(context.Background(), a, docD1, json.RawMessage(`{"v":2}`))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(store.persisted(docD1)))
}

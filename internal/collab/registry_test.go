package collab

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"notehub/internal/model"
)

// fakeSender records every event delivered to it. Safe for concurrent use.
type fakeSender struct {
	id string

	mu     sync.Mutex
	events []recordedEvent
	fail   bool
}

type recordedEvent struct {
	Event   string
	Payload any
}

func newFakeSender(id string) *fakeSender {
	return &fakeSender{id: id}
}

func (f *fakeSender) ID() string { return f.id }

func (f *fakeSender) Send(event string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return assert.AnError
	}
	f.events = append(f.events, recordedEvent{Event: event, Payload: payload})
	return nil
}

func (f *fakeSender) recorded() []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedEvent, len(f.events))
	copy(out, f.events)
	return out
}

func TestRegistryJoinAndMembers(t *testing.T) {
	r := NewRegistry()
	a := newFakeSender("a")
	b := newFakeSender("b")

	r.Join("doc-1", a, model.RoleEditor)
	r.Join("doc-1", b, model.RoleViewer)

	assert.Equal(t, 2, r.RoomSize("doc-1"))

	members := r.MembersOf("doc-1", "a")
	assert.Len(t, members, 1)
	assert.Equal(t, "b", members[0].ID())

	role, ok := r.RoleOf("doc-1", "a")
	assert.True(t, ok)
	assert.Equal(t, model.RoleEditor, role)
}

func TestRegistryRejoinIsIdempotent(t *testing.T) {
	r := NewRegistry()
	a := newFakeSender("a")

	r.Join("doc-1", a, model.RoleEditor)
	r.Join("doc-1", a, model.RoleEditor)

	assert.Equal(t, 1, r.RoomSize("doc-1"))
}

func TestRegistryConnectionInMultipleRooms(t *testing.T) {
	r := NewRegistry()
	a := newFakeSender("a")

	r.Join("doc-1", a, model.RoleEditor)
	r.Join("doc-2", a, model.RoleViewer)

	role1, _ := r.RoleOf("doc-1", "a")
	role2, _ := r.RoleOf("doc-2", "a")
	assert.Equal(t, model.RoleEditor, role1)
	assert.Equal(t, model.RoleViewer, role2)
}

func TestRegistryLeaveRemovesFromAllRooms(t *testing.T) {
	r := NewRegistry()
	a := newFakeSender("a")
	b := newFakeSender("b")

	r.Join("doc-1", a, model.RoleEditor)
	r.Join("doc-2", a, model.RoleViewer)
	r.Join("doc-1", b, model.RoleViewer)

	r.Leave(a)

	assert.Empty(t, r.MembersOf("doc-1", ""))
	_, ok := r.RoleOf("doc-1", "a")
	assert.False(t, ok)
	assert.Equal(t, 0, r.RoomSize("doc-2"))

	// b was never removed.
	role, ok := r.RoleOf("doc-1", "b")
	assert.True(t, ok)
	assert.Equal(t, model.RoleViewer, role)
}

func TestRegistryMembersOfUnknownRoom(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.MembersOf("nope", ""))
	assert.Equal(t, 0, r.RoomSize("nope"))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s := newFakeSender(string(rune('a' + n%26)))
			r.Join("doc-1", s, model.RoleViewer)
			r.MembersOf("doc-1", "")
			r.Leave(s)
		}(i)
	}
	wg.Wait()
}

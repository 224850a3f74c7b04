package collab

import (
	"sync"

	"notehub/internal/model"
)

type member struct {
	sender Sender
	role   model.Role
}

// Registry tracks which connections belong to which document rooms. It is the
// only mutable shared state in the collaboration layer; a single mutex guards
// the membership map. State is purely in-memory: membership is reconstructed
// as clients reconnect after a restart.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[string]member
}

// NewRegistry constructs an empty registry. One instance per process,
// injected into the relay and the transport handler.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]map[string]member)}
}

// Join adds the connection to the room with the given role. Rejoining the
// same room is idempotent; a connection may be in several rooms at once.
func (r *Registry) Join(documentID string, s Sender, role model.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[documentID]
	if !ok {
		room = make(map[string]member)
		r.rooms[documentID] = room
	}
	room[s.ID()] = member{sender: s, role: role}
}

// Leave removes the connection from every room it belongs to. Empty rooms
// are dropped. Invoked on transport disconnect.
func (r *Registry) Leave(s Sender) {
	id := s.ID()
	r.mu.Lock()
	defer r.mu.Unlock()
	for documentID, room := range r.rooms {
		delete(room, id)
		if len(room) == 0 {
			delete(r.rooms, documentID)
		}
	}
}

// MembersOf returns the room's current members, excluding the connection
// with excludeID (pass "" to exclude nobody). Used to skip the broadcast
// originator.
func (r *Registry) MembersOf(documentID, excludeID string) []Sender {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room := r.rooms[documentID]
	out := make([]Sender, 0, len(room))
	for id, m := range room {
		if id == excludeID {
			continue
		}
		out = append(out, m.sender)
	}
	return out
}

// RoleOf returns the role the connection joined the room with. The role is
// cached at join time and never re-validated for the connection's lifetime.
func (r *Registry) RoleOf(documentID, connID string) (model.Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.rooms[documentID][connID]
	if !ok {
		return "", false
	}
	return m.role, true
}

// RoomSize reports the current member count of a room.
func (r *Registry) RoomSize(documentID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[documentID])
}

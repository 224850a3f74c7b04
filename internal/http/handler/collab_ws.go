package handler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"notehub/internal/collab"
	"notehub/internal/model"
)

// CollabDeps bundles everything the websocket endpoint needs. Board and page
// documents share one registry (ids are UUIDs, so rooms cannot collide) but
// have separate gates and relays bound to their own stores.
type CollabDeps struct {
	Registry        *collab.Registry
	Gates           map[model.DocumentKind]*collab.Gate
	Relays          map[model.DocumentKind]*collab.Relay
	Metrics         *collab.Metrics
	MaxMessageBytes int64
}

// wsEnvelope is the single message frame exchanged with clients.
type wsEnvelope struct {
	Event      string          `json:"event"`
	Kind       string          `json:"kind,omitempty"`
	DocumentID string          `json:"document_id,omitempty"`
	Token      string          `json:"token,omitempty"`
	Content    json.RawMessage `json:"content,omitempty"`
	Payload    any             `json:"payload,omitempty"`
}

// wsSender adapts a websocket connection to the collab.Sender interface.
// The mutex serializes writes; relay broadcasts and loop replies can race.
type wsSender struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *wsSender) ID() string { return s.id }

func (s *wsSender) Send(event string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(wsEnvelope{Event: event, Payload: payload})
}

// UpgradeRequired rejects plain HTTP requests on websocket routes.
func UpgradeRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// CollabSocket is the realtime collaboration endpoint. A connection joins
// rooms with join-room frames and submits full-content replacements with
// update-content frames; every failure is reported back on the same
// connection as an error frame and never torn down except on read errors.
func CollabSocket(deps CollabDeps) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		if deps.MaxMessageBytes > 0 {
			conn.SetReadLimit(deps.MaxMessageBytes)
		}
		sender := &wsSender{id: uuid.New().String(), conn: conn}

		if deps.Metrics != nil {
			deps.Metrics.ActiveConnections.Inc()
			defer deps.Metrics.ActiveConnections.Dec()
		}
		// Disconnect cleans up every room membership.
		defer deps.Registry.Leave(sender)

		// Which kind each joined document belongs to, so update frames can
		// omit it.
		kinds := make(map[string]model.DocumentKind)

		for {
			var env wsEnvelope
			if err := conn.ReadJSON(&env); err != nil {
				return
			}

			switch env.Event {
			case collab.EventJoinRoom:
				kind := model.DocumentKind(env.Kind)
				if kind == "" {
					kind = model.KindBoard
				}
				gate, ok := deps.Gates[kind]
				if !ok {
					sendError(sender, collab.ErrInvalidRequest)
					continue
				}
				role, err := gate.Authorize(context.Background(), env.DocumentID, env.Token)
				if err != nil {
					if deps.Metrics != nil {
						deps.Metrics.JoinsDenied.Inc()
					}
					sendError(sender, err)
					continue
				}
				deps.Registry.Join(env.DocumentID, sender, role)
				kinds[env.DocumentID] = kind
				_ = sender.Send(collab.EventJoined, collab.JoinedPayload{
					DocumentID: env.DocumentID,
					Role:       string(role),
				})

			case collab.EventUpdateContent:
				relay, ok := deps.Relays[kinds[env.DocumentID]]
				if !ok {
					sendError(sender, collab.ErrForbidden)
					continue
				}
				if err := relay.Apply(context.Background(), sender, env.DocumentID, env.Content); err != nil {
					sendError(sender, err)
				}

			default:
				sendError(sender, collab.ErrInvalidRequest)
			}
		}
	})
}

// sendError reports a failure to the originating connection only. Reasons are
// stable strings; internals never leak to clients.
func sendError(s collab.Sender, err error) {
	_ = s.Send(collab.EventError, collab.ErrorPayload{Reason: collabReason(err)})
}

func collabReason(err error) string {
	switch {
	case errors.Is(err, collab.ErrInvalidRequest):
		return "invalid-request"
	case errors.Is(err, collab.ErrNotFound):
		return "not-found"
	case errors.Is(err, collab.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, collab.ErrForbidden):
		return "forbidden"
	case errors.Is(err, collab.ErrPersistence):
		return "persistence-failure"
	default:
		return "internal-error"
	}
}

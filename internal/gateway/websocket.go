package gateway

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/iiskills/mpa/internal/bus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	envelopeReply  = "reply"
	envelopeNotice = "notice"
	envelopeError  = "error"
)

// wsEnvelope is every frame the server writes on a websocket.
type wsEnvelope struct {
	Type   string               `json:"type"`
	Reply  *messageResponse     `json:"reply,omitempty"`
	Notice *bus.OutboundMessage `json:"notice,omitempty"`
	Error  string               `json:"error,omitempty"`
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) send(v wsEnvelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// handleWebSocket carries a chat over one connection: the client sends
// message requests, the server answers them and pushes fired reminders.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	chatID := r.URL.Query().Get("chat_id")
	if chatID == "" {
		chatID = defaultChatID
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Websocket upgrade failed", "error", err)
		return
	}
	client := &wsClient{conn: conn}

	s.inboxMu.Lock()
	if s.clients[chatID] == nil {
		s.clients[chatID] = make(map[*wsClient]struct{})
	}
	s.clients[chatID][client] = struct{}{}
	pending := s.inbox[chatID]
	delete(s.inbox, chatID)
	s.inboxMu.Unlock()

	slog.Info("Websocket connected", "chat_id", chatID)
	defer func() {
		s.inboxMu.Lock()
		delete(s.clients[chatID], client)
		if len(s.clients[chatID]) == 0 {
			delete(s.clients, chatID)
		}
		s.inboxMu.Unlock()
		conn.Close()
		slog.Info("Websocket disconnected", "chat_id", chatID)
	}()

	for _, msg := range pending {
		if err := client.send(wsEnvelope{Type: envelopeNotice, Notice: msg}); err != nil {
			return
		}
	}

	for {
		var req messageRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("Websocket read error", "chat_id", chatID, "error", err)
			}
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			if err := client.send(wsEnvelope{Type: envelopeError, Error: "text required"}); err != nil {
				return
			}
			continue
		}
		req.ChatID = chatID
		resp := s.answer(r.Context(), req)
		if err := client.send(wsEnvelope{Type: envelopeReply, Reply: &resp}); err != nil {
			return
		}
	}
}

// Package gateway serves the assistant over HTTP.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iiskills/mpa/internal/actions"
	"github.com/iiskills/mpa/internal/assistant"
	"github.com/iiskills/mpa/internal/bus"
	"github.com/iiskills/mpa/internal/config"
	"github.com/iiskills/mpa/internal/effects"
	"github.com/iiskills/mpa/internal/scheduler"
	"github.com/iiskills/mpa/internal/store"
)

const defaultChatID = "web"

// Deps are the collaborators the server talks to. Settings and Scheduler
// may be nil.
type Deps struct {
	Assistant *assistant.Assistant
	Effects   *effects.Dispatcher
	Scheduler *scheduler.Scheduler
	Bus       *bus.MessageBus
	Settings  store.Settings
	Version   string
}

// Server is the HTTP gateway.
type Server struct {
	cfg     config.GatewayConfig
	deps    Deps
	metrics *metrics
	started time.Time

	// mu serializes access to the assistant.
	mu sync.Mutex

	// inboxMu guards inbox and clients. Notices for a chat with a live
	// websocket are pushed; otherwise they wait in the inbox.
	inboxMu sync.Mutex
	inbox   map[string][]*bus.OutboundMessage
	clients map[string]map[*wsClient]struct{}
}

// New creates a Server and subscribes it to http-channel notices on the bus.
func New(cfg config.GatewayConfig, deps Deps) *Server {
	s := &Server{
		cfg:     cfg,
		deps:    deps,
		metrics: newMetrics(),
		started: time.Now(),
		inbox:   make(map[string][]*bus.OutboundMessage),
		clients: make(map[string]map[*wsClient]struct{}),
	}
	if deps.Bus != nil {
		deps.Bus.Subscribe(bus.ChannelHTTP, s.deliver)
	}
	return s
}

func (s *Server) deliver(msg *bus.OutboundMessage) {
	s.inboxMu.Lock()
	var live []*wsClient
	for c := range s.clients[msg.ChatID] {
		live = append(live, c)
	}
	if len(live) == 0 {
		s.inbox[msg.ChatID] = append(s.inbox[msg.ChatID], msg)
	}
	s.inboxMu.Unlock()

	for _, c := range live {
		if err := c.send(wsEnvelope{Type: envelopeNotice, Notice: msg}); err != nil {
			slog.Warn("Websocket notice failed", "chat_id", msg.ChatID, "error", err)
		}
	}
}

// drain removes and returns the pending notices for chatID.
func (s *Server) drain(chatID string) []*bus.OutboundMessage {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	msgs := s.inbox[chatID]
	delete(s.inbox, chatID)
	return msgs
}

// Handler returns the gateway's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/message", s.authorized(s.handleMessage))
	mux.HandleFunc("/api/v1/register", s.authorized(s.handleRegister))
	mux.HandleFunc("/api/v1/reminders", s.authorized(s.handleReminders))
	mux.HandleFunc("/api/v1/notices", s.authorized(s.handleNotices))
	mux.HandleFunc("/api/v1/ws", s.authorized(s.handleWebSocket))
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Gateway listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("gateway shutdown: %w", err)
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AuthToken != "" {
			token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
			if token != s.cfg.AuthToken {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Gateway response encode failed", "error", err)
	}
}

type messageRequest struct {
	Text   string `json:"text"`
	User   string `json:"user"`
	ChatID string `json:"chat_id"`
}

// ActionView is an action with its kind and label spelled out for JSON.
type ActionView struct {
	Kind  actions.Kind   `json:"kind"`
	Label string         `json:"label"`
	Data  actions.Action `json:"data"`
}

type messageResponse struct {
	Reply      string           `json:"reply"`
	Display    string           `json:"display"`
	Intent     string           `json:"intent"`
	Authorized bool             `json:"authorized"`
	Actions    []ActionView     `json:"actions"`
	Notices    []effects.Notice `json:"notices"`
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text required", http.StatusBadRequest)
		return
	}
	if req.ChatID == "" {
		req.ChatID = defaultChatID
	}

	writeJSON(w, http.StatusOK, s.answer(r.Context(), req))
}

// answer runs one message through the assistant and, when the caller is
// authorized, through the effects dispatcher.
func (s *Server) answer(ctx context.Context, req messageRequest) messageResponse {
	start := time.Now()
	s.mu.Lock()
	a := s.deps.Assistant
	reply := a.Respond(req.Text, req.User)
	raw := reply.String()
	acts := a.ParseActionCodes(raw)
	display := a.CleanResponse(raw)
	s.mu.Unlock()

	resp := messageResponse{
		Reply:      raw,
		Display:    display,
		Intent:     reply.Intent.String(),
		Authorized: reply.Authorized,
		Actions:    []ActionView{},
		Notices:    []effects.Notice{},
	}
	for _, act := range acts {
		resp.Actions = append(resp.Actions, ActionView{Kind: act.Kind(), Label: act.Label(), Data: act})
		s.metrics.actions.WithLabelValues(string(act.Kind())).Inc()
	}
	if reply.Authorized {
		s.metrics.messages.WithLabelValues(resp.Intent).Inc()
		if s.deps.Effects != nil {
			resp.Notices = s.deps.Effects.Apply(ctx, acts, effects.Origin{
				Channel: bus.ChannelHTTP,
				ChatID:  req.ChatID,
				Message: req.Text,
			})
		}
	} else {
		s.metrics.unauthorized.Inc()
	}
	s.metrics.latency.Observe(time.Since(start).Seconds())
	return resp
}

type registerRequest struct {
	User string `json:"user"`
}

// handleRegister claims the assistant for a user. Only allowed while nobody
// is registered; re-registration goes through the CLI.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.User) == "" {
		http.Error(w, "user required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.deps.Assistant.RegisteredUser(); ok {
		http.Error(w, "already registered", http.StatusConflict)
		return
	}
	if s.deps.Settings != nil {
		if err := s.deps.Settings.Set(r.Context(), store.KeyRegisteredUser, req.User); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	s.deps.Assistant.SetRegisteredUser(req.User)
	slog.Info("User registered", "user", req.User)
	writeJSON(w, http.StatusOK, map[string]any{"registered": true, "user": req.User})
}

func (s *Server) handleReminders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	list := []scheduler.Reminder{}
	if s.deps.Scheduler != nil {
		list = s.deps.Scheduler.List()
	}
	writeJSON(w, http.StatusOK, list)
}

// handleNotices drains fired notices for a chat.
func (s *Server) handleNotices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	chatID := r.URL.Query().Get("chat_id")
	if chatID == "" {
		chatID = defaultChatID
	}
	msgs := s.drain(chatID)
	if msgs == nil {
		msgs = []*bus.OutboundMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	_, registered := s.deps.Assistant.RegisteredUser()
	persona := s.deps.Assistant.Config()
	s.mu.Unlock()

	pending := 0
	if s.deps.Scheduler != nil {
		pending = len(s.deps.Scheduler.List())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"version":           s.deps.Version,
		"uptime_seconds":    int(time.Since(s.started).Seconds()),
		"name":              persona.DisplayName,
		"registered":        registered,
		"pending_reminders": pending,
	})
}

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iiskills/mpa/internal/assistant"
	"github.com/iiskills/mpa/internal/config"
	"github.com/iiskills/mpa/internal/store"
)

// runtime is the assistant restored from config and the settings store.
type runtime struct {
	cfg       *config.Config
	settings  store.Settings
	assistant *assistant.Assistant
}

func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	loc, err := cfg.Assistant.Location()
	if err != nil {
		return nil, err
	}
	settings, err := store.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	profile, err := store.LoadProfile(ctx, settings)
	if err != nil {
		settings.Close()
		return nil, err
	}

	a := assistant.New(assistant.Options{Location: loc})
	applyProfile(a, profile)
	return &runtime{cfg: cfg, settings: settings, assistant: a}, nil
}

func applyProfile(a *assistant.Assistant, p store.Profile) {
	if p.UserName != "" {
		a.SetUserName(p.UserName)
	}
	if p.Gender != "" {
		g, err := assistant.ParseGender(p.Gender)
		if err == nil {
			err = a.SetGender(g)
		}
		if err != nil {
			slog.Warn("Ignoring stored gender", "gender", p.Gender, "error", err)
		}
	}
	if p.Language != "" {
		a.SetLanguage(p.Language)
	}
	a.SetRegisteredUser(p.RegisteredUser)
}

func (r *runtime) saveProfile(ctx context.Context) error {
	c := r.assistant.Config()
	registered, _ := r.assistant.RegisteredUser()
	return store.SaveProfile(ctx, r.settings, store.Profile{
		UserName:       c.DisplayName,
		Gender:         string(c.Gender),
		Language:       c.Language,
		RegisteredUser: registered,
	})
}

// claimed picks the identity a message is sent as.
func (r *runtime) claimed(flag string) string {
	if flag != "" {
		return flag
	}
	return r.cfg.Assistant.User
}

func (r *runtime) Close() error {
	return r.settings.Close()
}

package store

import (
	"context"
	"fmt"
)

// Setting keys. The first three match the keys browsers of the web client
// already hold in localStorage.
const (
	KeyUserName       = "mpaUserName"
	KeyGender         = "mpaGender"
	KeyLanguage       = "mpaLanguage"
	KeyRegisteredUser = "mpaRegisteredUser"
)

// Profile is everything the assistant persists between runs. Empty fields
// mean "not set".
type Profile struct {
	UserName       string `json:"userName,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Language       string `json:"language,omitempty"`
	RegisteredUser string `json:"registeredUser,omitempty"`
}

func (p *Profile) fields() []struct {
	key string
	val *string
} {
	return []struct {
		key string
		val *string
	}{
		{KeyUserName, &p.UserName},
		{KeyGender, &p.Gender},
		{KeyLanguage, &p.Language},
		{KeyRegisteredUser, &p.RegisteredUser},
	}
}

// LoadProfile reads every profile key from s.
func LoadProfile(ctx context.Context, s Settings) (Profile, error) {
	var p Profile
	for _, f := range p.fields() {
		v, ok, err := s.Get(ctx, f.key)
		if err != nil {
			return Profile{}, fmt.Errorf("load profile: %w", err)
		}
		if ok {
			*f.val = v
		}
	}
	return p, nil
}

// SaveProfile writes p to s. Empty fields are deleted so that a later load
// falls back to defaults.
func SaveProfile(ctx context.Context, s Settings, p Profile) error {
	for _, f := range p.fields() {
		var err error
		if *f.val == "" {
			err = s.Delete(ctx, f.key)
		} else {
			err = s.Set(ctx, f.key, *f.val)
		}
		if err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	}
	return nil
}

package assistant

import (
	"errors"
	"fmt"
	"strings"
)

// Gender is the voice the assistant presents with.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// ErrInvalidGender is returned for voices other than male, female or neutral.
var ErrInvalidGender = errors.New("invalid gender")

// ParseGender accepts male, female or neutral in any case.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
	return g, nil
}

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNeutral:
		return true
	}
	return false
}

// title is the capitalised form used in the system prompt.
func (g Gender) title() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	}
	return "Neutral"
}

// Config is the assistant's persona.
type Config struct {
	DisplayName string `json:"displayName"`
	Gender      Gender `json:"gender"`
	Language    string `json:"language"`
}

// DefaultConfig returns the persona used before the user changes anything.
func DefaultConfig() Config {
	return Config{
		DisplayName: "MPA",
		Gender:      GenderNeutral,
		Language:    "en",
	}
}

// withDefaults fills empty or invalid fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DisplayName == "" {
		c.DisplayName = d.DisplayName
	}
	if !c.Gender.Valid() {
		c.Gender = d.Gender
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	return c
}

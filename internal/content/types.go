package content

import (
	"errors"
	"strings"
)

var (
	ErrUnknownTier     = errors.New("unknown difficulty tier")
	ErrIndexOutOfRange = errors.New("resource index out of range")
)

// Tier is a difficulty level shared by the catalog, the quiz bank and the
// progress store. The stored key is the single-letter label.
type Tier string

const (
	TierBeginner     Tier = "A"
	TierIntermediate Tier = "B"
	TierAdvanced     Tier = "C"
)

// AllTiers returns the fixed tier set in presentation order.
func AllTiers() []Tier {
	return []Tier{TierBeginner, TierIntermediate, TierAdvanced}
}

// Label returns the human-readable tier name.
func (t Tier) Label() string {
	switch t {
	case TierBeginner:
		return "Beginner"
	case TierIntermediate:
		return "Intermediate"
	case TierAdvanced:
		return "Advanced"
	}
	return string(t)
}

// ParseTier resolves raw user input (case-insensitive) to a tier.
func ParseTier(raw string) (Tier, error) {
	switch Tier(strings.ToUpper(strings.TrimSpace(raw))) {
	case TierBeginner:
		return TierBeginner, nil
	case TierIntermediate:
		return TierIntermediate, nil
	case TierAdvanced:
		return TierAdvanced, nil
	}
	return "", ErrUnknownTier
}

// Topic is one read-only learning resource.
type Topic struct {
	Title string `yaml:"title" validate:"required"`
	Notes string `yaml:"notes" validate:"required"`
}

package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pkgerrors "insightapi/pkg/errors"
)

// MinDescriptionLength is the minimum length of a business description,
// counted in runes after trimming.
const MinDescriptionLength = 10

// Mode represents the perspective the analysis is written for
type Mode string

const (
	ModeStartup             Mode = "startup"
	ModeContentCreator      Mode = "content_creator"
	ModeMarketingStrategist Mode = "marketing_strategist"
)

// Kind represents the requested analysis flavor
type Kind string

const (
	KindSWOT         Kind = "swot"
	KindProductIdeas Kind = "product_ideas"
	KindMarketTrends Kind = "market_trends"
)

// Request is an immutable value describing one analysis submission
type Request struct {
	description string
	mode        Mode
	kind        Kind
}

// NewRequest creates a request with validation. The description is
// trimmed before the length check; mode and kind must be known values.
func NewRequest(description string, mode Mode, kind Kind) (Request, error) {
	description = strings.TrimSpace(description)

	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return Request{}, pkgerrors.NewValidationError(
			fmt.Sprintf("description must be at least %d characters", MinDescriptionLength))
	}

	if !isValidMode(mode) {
		return Request{}, pkgerrors.NewValidationError("invalid analysis mode")
	}

	if !isValidKind(kind) {
		return Request{}, pkgerrors.NewValidationError("invalid analysis kind")
	}

	return Request{
		description: description,
		mode:        mode,
		kind:        kind,
	}, nil
}

// Description returns the business description
func (r Request) Description() string {
	return r.description
}

// Mode returns the analysis mode
func (r Request) Mode() Mode {
	return r.mode
}

// Kind returns the analysis kind
func (r Request) Kind() Kind {
	return r.kind
}

// Equals checks if two requests are equal
func (r Request) Equals(other Request) bool {
	return r.description == other.description &&
		r.mode == other.mode &&
		r.kind == other.kind
}

// Label returns the human-readable name of a kind, as used in prompts
// and report metadata
func (k Kind) Label() string {
	switch k {
	case KindProductIdeas:
		return "Product Ideas"
	case KindMarketTrends:
		return "Market Trends"
	default:
		return "SWOT Analysis"
	}
}

// Label returns the human-readable name of a mode
func (m Mode) Label() string {
	switch m {
	case ModeContentCreator:
		return "Content Creator"
	case ModeMarketingStrategist:
		return "Marketing Strategist"
	default:
		return "Startup"
	}
}

func isValidMode(m Mode) bool {
	switch m {
	case ModeStartup, ModeContentCreator, ModeMarketingStrategist:
		return true
	}
	return false
}

func isValidKind(k Kind) bool {
	switch k {
	case KindSWOT, KindProductIdeas, KindMarketTrends:
		return true
	}
	return false
}

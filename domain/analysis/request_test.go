package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "insightapi/pkg/errors"
)

func TestNewRequest_Valid(t *testing.T) {
	req, err := NewRequest("A neighborhood bakery with a catering arm.", ModeStartup, KindSWOT)
	require.NoError(t, err)

	assert.Equal(t, "A neighborhood bakery with a catering arm.", req.Description())
	assert.Equal(t, ModeStartup, req.Mode())
	assert.Equal(t, KindSWOT, req.Kind())
}

func TestNewRequest_TrimsDescription(t *testing.T) {
	req, err := NewRequest("   padded description here   ", ModeStartup, KindSWOT)
	require.NoError(t, err)
	assert.Equal(t, "padded description here", req.Description())
}

func TestNewRequest_TooShortAfterTrim(t *testing.T) {
	_, err := NewRequest("   short    ", ModeStartup, KindSWOT)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewRequest_LengthCountedInRunes(t *testing.T) {
	// Ten multi-byte runes pass the minimum even though each is several
	// bytes long.
	desc := strings.Repeat("é", MinDescriptionLength)
	_, err := NewRequest(desc, ModeStartup, KindSWOT)
	assert.NoError(t, err)
}

func TestNewRequest_InvalidMode(t *testing.T) {
	_, err := NewRequest("A perfectly valid description.", Mode("astronaut"), KindSWOT)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewRequest_InvalidKind(t *testing.T) {
	_, err := NewRequest("A perfectly valid description.", ModeStartup, Kind("horoscope"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "SWOT Analysis", KindSWOT.Label())
	assert.Equal(t, "Product Ideas", KindProductIdeas.Label())
	assert.Equal(t, "Market Trends", KindMarketTrends.Label())
}

func TestModeLabel(t *testing.T) {
	assert.Equal(t, "Startup", ModeStartup.Label())
	assert.Equal(t, "Content Creator", ModeContentCreator.Label())
	assert.Equal(t, "Marketing Strategist", ModeMarketingStrategist.Label())
}

package scheduler

import (
	"errors"
	"testing"

	"github.com/alexanderramin/linework/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1.2, cfg.Rate)
	assert.Equal(t, "Ramp-Up Crew (Estimate)", cfg.PlaceholderResource)
	assert.Equal(t, 9999, cfg.PlacementSentinel)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate_ZeroRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rate = 0

	err := cfg.Validate()
	require.Error(t, err)

	var cerr *domain.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "rate", cerr.Field)
}

func TestConfigValidate_NegativeRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rate = -1.2

	var cerr *domain.ConfigurationError
	require.True(t, errors.As(cfg.Validate(), &cerr))
	assert.Equal(t, "rate", cerr.Field)
}

func TestConfigValidate_EmptyPlaceholder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlaceholderResource = ""

	var cerr *domain.ConfigurationError
	require.True(t, errors.As(cfg.Validate(), &cerr))
	assert.Equal(t, "placeholder_resource", cerr.Field)
}

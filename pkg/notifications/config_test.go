package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxNotifications)
	assert.Equal(t, 300*time.Millisecond, cfg.AnimationWindow)
	assert.Equal(t, 3*time.Second, cfg.SuccessDuration)
	assert.Equal(t, 8*time.Second, cfg.ErrorDuration)
	assert.Equal(t, 5*time.Second, cfg.DefaultDuration)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("NOTIFICATIONS_MAX_NOTIFICATIONS", "3")
	t.Setenv("NOTIFICATIONS_ANIMATION_WINDOW", "150ms")
	t.Setenv("NOTIFICATIONS_SUCCESS_DURATION", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxNotifications)
	assert.Equal(t, 150*time.Millisecond, cfg.AnimationWindow)
	assert.Equal(t, 2*time.Second, cfg.SuccessDuration)
	assert.Equal(t, 5*time.Second, cfg.DefaultDuration)
}

func TestConfig_PolicyMergesDurations(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SuccessDuration: time.Second,
		ErrorDuration:   2 * time.Second,
		DefaultDuration: 4 * time.Second,
	}

	policy := cfg.policy(DefaultPolicy())

	assert.Equal(t, time.Second, policy[TypeSuccess].Duration)
	assert.Equal(t, 2*time.Second, policy[TypeError].Duration)
	assert.Equal(t, 4*time.Second, policy[TypeWarning].Duration)
	assert.Equal(t, 4*time.Second, policy[TypeInfo].Duration)

	// Non-duration fields are untouched.
	assert.True(t, policy[TypeSuccess].AutoDismiss)
	assert.True(t, policy[TypeError].Persistent)
}

func TestConfig_PolicyIgnoresZeroDurations(t *testing.T) {
	t.Parallel()

	policy := Config{}.policy(DefaultPolicy())
	assert.Equal(t, DefaultPolicy(), policy)
}

package notifications

import (
	"time"

	"github.com/saitotm/md-todo-sub001/pkg/config"
)

// Config carries the environment-tunable notification knobs.
type Config struct {
	// MaxNotifications bounds the live list; the lowest-priority, oldest
	// entries are evicted to stay under it.
	MaxNotifications int `env:"NOTIFICATIONS_MAX_NOTIFICATIONS" envDefault:"5"`

	// AnimationWindow is how long a notification stays in the removing set
	// before it is purged.
	AnimationWindow time.Duration `env:"NOTIFICATIONS_ANIMATION_WINDOW" envDefault:"300ms"`

	// Per-type auto-dismiss durations.
	SuccessDuration time.Duration `env:"NOTIFICATIONS_SUCCESS_DURATION" envDefault:"3s"`
	ErrorDuration   time.Duration `env:"NOTIFICATIONS_ERROR_DURATION" envDefault:"8s"`
	DefaultDuration time.Duration `env:"NOTIFICATIONS_DEFAULT_DURATION" envDefault:"5s"`
}

// LoadConfig reads Config from the environment (and an optional .env file).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// policy folds the configured durations into a copy of base.
func (c Config) policy(base Policy) Policy {
	merged := make(Policy, len(base))
	for typ, tp := range base {
		switch typ {
		case TypeSuccess:
			if c.SuccessDuration > 0 {
				tp.Duration = c.SuccessDuration
			}
		case TypeError:
			if c.ErrorDuration > 0 {
				tp.Duration = c.ErrorDuration
			}
		default:
			if c.DefaultDuration > 0 {
				tp.Duration = c.DefaultDuration
			}
		}
		merged[typ] = tp
	}
	return merged
}

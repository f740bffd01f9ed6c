// Package config loads application configuration from environment variables
// into annotated Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file (if present) is loaded once per process, then environment
// variables are parsed into any struct based on `env` field tags.
//
//	type NotificationsConfig struct {
//	    MaxNotifications int           `env:"NOTIFICATIONS_MAX_NOTIFICATIONS" envDefault:"5"`
//	    AnimationWindow  time.Duration `env:"NOTIFICATIONS_ANIMATION_WINDOW" envDefault:"300ms"`
//	}
//
//	var cfg NotificationsConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad panics on failure for configuration the application cannot start
// without. Errors can be matched with errors.Is against the package sentinel
// errors.
package config

// Package logger provides a thin factory around Go's slog package plus helper
// attribute constructors shared across the md-todo client core.
//
// The factory exposes a single constructor, New, configured through functional
// options:
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("app", "md-todo")),
//	)
//	logger.SetAsDefault(log)
//
// Helper constructors such as Error, Component and NotificationID live in
// attr.go and keep attribute naming consistent across packages.
package logger

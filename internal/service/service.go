// Package service holds the stateful gradient, favorite and collection
// services. Each service owns its state in memory and writes it through the
// persistence adapter after every mutation; memory is only updated once the
// write succeeded.
package service

import "log/slog"

func serviceLogger(log *slog.Logger, name string) *slog.Logger {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return log.With("service", name)
}

package backend

import (
	"log/slog"

	"gateway/config"
)

// Set bundles the forwarders for the three downstream services so they can be
// constructed once and injected together.
type Set struct {
	Clients *Forwarder
	Catalog *Forwarder
	Quoters *Forwarder
}

// NewSet builds one forwarder per configured downstream base URL.
func NewSet(cfg *config.Config, logger *slog.Logger) *Set {
	return &Set{
		Clients: NewForwarder("clients", cfg.Backends.ClientURL, logger),
		Catalog: NewForwarder("catalog", cfg.Backends.ServiceURL, logger),
		Quoters: NewForwarder("quoters", cfg.Backends.QuoterURL, logger),
	}
}

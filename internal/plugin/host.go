package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/i18nbuilder/internal/gate"
	"git.home.luguber.info/inful/i18nbuilder/internal/logfields"
)

// OpBuildStart names the build-start hook in PluginError.
const OpBuildStart = "buildStart"

// Host registers plugins and runs them through the lifecycle in
// registration order.
type Host struct {
	mu      sync.RWMutex
	plugins []Plugin
	names   map[string]struct{}
	logger  *slog.Logger
	newID   func() string
}

// NewHost creates an empty host. A nil logger uses slog.Default.
func NewHost(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{
		names:  make(map[string]struct{}),
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Register adds a plugin. Names must be unique within a host.
func (h *Host) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("cannot register nil plugin")
	}

	metadata := p.Metadata()
	if err := metadata.Validate(); err != nil {
		return fmt.Errorf("invalid plugin metadata: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.names[metadata.Name]; exists {
		return fmt.Errorf("plugin %s already registered", metadata.Name)
	}
	h.names[metadata.Name] = struct{}{}
	h.plugins = append(h.plugins, p)
	return nil
}

// Plugins returns the registered plugins in registration order.
func (h *Host) Plugins() []Plugin {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Plugin(nil), h.plugins...)
}

// Count returns the number of registered plugins.
func (h *Host) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.plugins)
}

// Run signals configResolved to every plugin, then buildStart. The first
// failing buildStart aborts the run.
func (h *Host) Run(ctx context.Context, env gate.HostEnv) (string, error) {
	plugins := h.Plugins()
	buildID := h.newID()
	logger := h.logger.With(logfields.BuildID(buildID))

	resolved := make([]Resolved, len(plugins))
	for i, p := range plugins {
		r := p.ConfigResolved(env)
		r.BuildID = buildID
		resolved[i] = r
	}

	for i, p := range plugins {
		name := p.Metadata().Name
		logger.Debug("Starting plugin", logfields.Plugin(name), slog.String("env", env.String()))
		if err := p.BuildStart(ctx, resolved[i]); err != nil {
			return buildID, NewPluginError(name, OpBuildStart, err)
		}
	}
	return buildID, nil
}

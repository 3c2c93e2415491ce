// Package plugin drives build plugins through the host lifecycle: a
// configuration-resolved signal followed by a build-start signal.
package plugin

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/i18nbuilder/internal/gate"
)

// Plugin is a build plugin registered with a Host.
type Plugin interface {
	// Metadata returns the plugin's identity.
	Metadata() PluginMetadata

	// ConfigResolved receives the host environment once configuration is
	// final. The returned value is handed back to BuildStart unchanged.
	ConfigResolved(env gate.HostEnv) Resolved

	// BuildStart runs the plugin's work for this invocation.
	BuildStart(ctx context.Context, r Resolved) error
}

// Resolved is the state captured at configuration resolution.
type Resolved struct {
	Env gate.HostEnv

	// BuildID identifies the invocation; set by the Host.
	BuildID string
}

// PluginMetadata describes a plugin's identity.
type PluginMetadata struct {
	// Name is the unique plugin identifier (e.g., "i18n").
	Name string

	// Version is the semantic version (e.g., "v1.0.0").
	Version string

	Description string
}

// String returns a human-readable representation of the plugin metadata.
func (m PluginMetadata) String() string {
	return fmt.Sprintf("%s@%s", m.Name, m.Version)
}

// Validate checks if the plugin metadata is valid.
func (m PluginMetadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	return nil
}

// PluginError represents an error that occurred within a plugin.
type PluginError struct {
	// PluginName identifies which plugin failed.
	PluginName string

	// Operation is the lifecycle hook that failed.
	Operation string

	Err error
}

// Error implements the error interface.
func (e *PluginError) Error() string {
	return fmt.Sprintf("plugin %s failed during %s: %v", e.PluginName, e.Operation, e.Err)
}

// Unwrap returns the underlying error for error inspection.
func (e *PluginError) Unwrap() error {
	return e.Err
}

// NewPluginError creates a new plugin error.
func NewPluginError(pluginName, operation string, err error) *PluginError {
	return &PluginError{
		PluginName: pluginName,
		Operation:  operation,
		Err:        err,
	}
}

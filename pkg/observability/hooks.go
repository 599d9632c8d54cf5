// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about scenario execution and layout rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetScenarioHooks(&myScenarioHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scenario().OnStepStart(ctx, name, i, op)
//	// ... apply the step ...
//	observability.Scenario().OnStepComplete(ctx, name, i, op, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Scenario Hooks
// =============================================================================

// ScenarioHooks receives events from scenario execution.
type ScenarioHooks interface {
	// Scenario lifecycle events
	OnScenarioStart(ctx context.Context, name string, stepCount int)
	OnScenarioComplete(ctx context.Context, name string, duration time.Duration, err error)

	// Per-step events; op is the step operation name ("add-left", "merge", ...).
	OnStepStart(ctx context.Context, name string, step int, op string)
	OnStepComplete(ctx context.Context, name string, step int, op string, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from layout export operations.
type RenderHooks interface {
	// OnRenderStart records the beginning of an export.
	OnRenderStart(ctx context.Context, format string)

	// OnRenderComplete records a finished export with output size.
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScenarioHooks is a no-op implementation of ScenarioHooks.
type NoopScenarioHooks struct{}

func (NoopScenarioHooks) OnScenarioStart(context.Context, string, int)                     {}
func (NoopScenarioHooks) OnScenarioComplete(context.Context, string, time.Duration, error) {}
func (NoopScenarioHooks) OnStepStart(context.Context, string, int, string)                 {}
func (NoopScenarioHooks) OnStepComplete(context.Context, string, int, string, time.Duration, error) {
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scenarioHooks ScenarioHooks = NoopScenarioHooks{}
	renderHooks   RenderHooks   = NoopRenderHooks{}
	hooksMu       sync.RWMutex
)

// SetScenarioHooks registers custom scenario hooks.
// This should be called once at application startup before running scenarios.
func SetScenarioHooks(h ScenarioHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scenarioHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any exports.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Scenario returns the registered scenario hooks.
func Scenario() ScenarioHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scenarioHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scenarioHooks = NoopScenarioHooks{}
	renderHooks = NoopRenderHooks{}
}

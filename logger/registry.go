package logger

import (
	"maps"
	"slices"
	"sync"
)

// Component names used by the packages of this module.
const (
	ComponentPipeline      = "pipeline"
	ComponentConfig        = "config"
	ComponentObservability = "observability"
)

var defaultComponents = []string{ComponentPipeline, ComponentConfig, ComponentObservability}

var components = struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}{loggers: make(map[string]*Logger)}

// Register sets the logger returned by Get(name).
func Register(name string, l *Logger) {
	components.mu.Lock()
	defer components.mu.Unlock()
	components.loggers[name] = l
}

// Unregister removes a component logger; Get falls back to the global one.
func Unregister(name string) {
	components.mu.Lock()
	defer components.mu.Unlock()
	delete(components.loggers, name)
}

// Get returns the logger registered for a component. Unregistered components
// get the current global logger tagged with their name, so Init takes effect
// for them without re-registration.
func Get(name string) *Logger {
	components.mu.RLock()
	l, ok := components.loggers[name]
	components.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// Registered returns the registered component names, sorted.
func Registered() []string {
	components.mu.RLock()
	defer components.mu.RUnlock()
	return slices.Sorted(maps.Keys(components.loggers))
}

// RegisterDefaults pins the pipeline, config and observability loggers, plus
// any extra names, to the current global logger.
func RegisterDefaults(extra ...string) {
	base := GetGlobalLogger()
	for _, name := range append(slices.Clone(defaultComponents), extra...) {
		Register(name, base.WithComponent(name))
	}
}

// RegisterWithConfig gives one component its own level and format, for
// instance debug output for the fold engine only.
func RegisterWithConfig(name string, cfg Config) {
	cfg.ApplyDefaults()
	Register(name, New(&cfg, name).WithComponent(name))
}

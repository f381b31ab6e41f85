package registry

import (
	"sync"

	"github.com/pipekit-labs/pipekit/internal/component"
	"github.com/pipekit-labs/pipekit/internal/scaffold"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// RegisterBuiltins binds every shim component type to its scaffolder.
func RegisterBuiltins(r *Registry) {
	r.Register(component.RawAsset, func() scaffold.Scaffolder { return scaffold.AssetScaffolder{} })
	r.Register(component.RawAssetCheck, func() scaffold.Scaffolder { return scaffold.AssetCheckScaffolder{} })
	r.Register(component.RawMultiAsset, func() scaffold.Scaffolder { return scaffold.MultiAssetScaffolder{} })
	r.Register(component.RawSchedule, func() scaffold.Scaffolder { return scaffold.ScheduleScaffolder{} })
	r.Register(component.RawSensor, func() scaffold.Scaffolder { return scaffold.SensorScaffolder{} })
	r.Register(component.RawJob, func() scaffold.Scaffolder { return scaffold.JobScaffolder{} })
}

// Default returns the process-wide registry, populated with the builtins on
// first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
		RegisterBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

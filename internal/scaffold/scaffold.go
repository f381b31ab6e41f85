package scaffold

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed shims/*.py.tmpl
var shimFS embed.FS

var shimTemplates = template.Must(template.ParseFS(shimFS, "shims/*.py.tmpl"))

// Scaffolder produces the initial source text for a newly requested component.
// Implementations must be deterministic and must accept any string.
type Scaffolder interface {
	Text(name string) string
}

// Func adapts an ordinary function into a Scaffolder.
type Func func(name string) string

// Text calls f(name).
func (f Func) Text(name string) string { return f(name) }

// renderShim executes one of the embedded shim templates with name as its data.
// The templates only print their data, and a strings.Builder never returns a
// write error, so execution cannot fail.
func renderShim(tmpl, name string) string {
	var b strings.Builder
	_ = shimTemplates.ExecuteTemplate(&b, tmpl, name)
	return b.String()
}

// AssetScaffolder produces a commented-out asset definition.
type AssetScaffolder struct{}

func (AssetScaffolder) Text(name string) string { return renderShim("asset.py.tmpl", name) }

// AssetCheckScaffolder produces a commented-out asset check definition.
type AssetCheckScaffolder struct{}

func (AssetCheckScaffolder) Text(name string) string { return renderShim("asset_check.py.tmpl", name) }

// MultiAssetScaffolder produces a commented-out multi-asset definition.
type MultiAssetScaffolder struct{}

func (MultiAssetScaffolder) Text(name string) string { return renderShim("multi_asset.py.tmpl", name) }

// ScheduleScaffolder produces a commented-out schedule definition.
type ScheduleScaffolder struct{}

func (ScheduleScaffolder) Text(name string) string { return renderShim("schedule.py.tmpl", name) }

// SensorScaffolder produces a commented-out sensor definition.
type SensorScaffolder struct{}

func (SensorScaffolder) Text(name string) string { return renderShim("sensor.py.tmpl", name) }

// JobScaffolder produces a commented-out job definition.
type JobScaffolder struct{}

func (JobScaffolder) Text(name string) string { return renderShim("job.py.tmpl", name) }

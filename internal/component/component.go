package component

// Type identifies a kind of pluggable pipeline component.
type Type string

// Built-in shim component types. RawAsset is the raw unit-of-work definition.
const (
	RawAsset      Type = "raw-asset"
	RawAssetCheck Type = "raw-asset-check"
	RawMultiAsset Type = "raw-multi-asset"
	RawSchedule   Type = "raw-schedule"
	RawSensor     Type = "raw-sensor"
	RawJob        Type = "raw-job"
)

// descriptions holds the one-line summary shown by `pipekit types`.
var descriptions = map[Type]string{
	RawAsset:      "Asset definition component",
	RawAssetCheck: "Asset check definition component",
	RawMultiAsset: "Multi-asset definition component",
	RawSchedule:   "Schedule definition component",
	RawSensor:     "Sensor definition component",
	RawJob:        "Job definition component",
}

// Shims returns the built-in shim component types in display order.
func Shims() []Type {
	return []Type{RawAsset, RawAssetCheck, RawMultiAsset, RawSchedule, RawSensor, RawJob}
}

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// Description returns the summary for a built-in type, or an empty string for
// types declared outside this package.
func (t Type) Description() string { return descriptions[t] }

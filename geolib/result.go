package geolib

// Kind classifies an outcome of resolving.
type Kind uint8

const (
	// KindSuccess means that FieldMap is fully populated for the mode.
	KindSuccess Kind = iota

	// KindNoData means that IP address is valid but absent from the
	// table. In single mode it also means that a resource has no value.
	KindNoData

	// KindMalformedInput means that IP address was rejected by a table.
	KindMalformedInput

	// KindUnknownResource means that requested resource is not in the
	// catalog.
	KindUnknownResource

	// KindNotImplemented is returned for ip resource in single mode.
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindNoData:
		return "no_data"
	case KindMalformedInput:
		return "malformed_input"
	case KindUnknownResource:
		return "unknown_resource"
	case KindNotImplemented:
		return "not_implemented"
	}

	return "unknown"
}

// Result is an outcome of resolving. Fields is nil for any kind but
// KindSuccess.
type Result struct {
	Kind   Kind
	Fields *FieldMap
}

func (r Result) OK() bool {
	return r.Kind == KindSuccess
}

type modeKind uint8

const (
	modeCurated modeKind = iota
	modeComplete
	modeSingle
)

// Mode defines a set of resources requested by a client.
type Mode struct {
	kind     modeKind
	resource string
}

// ModeCurated requests CuratedFields.
func ModeCurated() Mode {
	return Mode{kind: modeCurated}
}

// ModeComplete requests every field of the catalog.
func ModeComplete() Mode {
	return Mode{kind: modeComplete}
}

// ModeSingle requests a single resource by its name.
func ModeSingle(resource string) Mode {
	return Mode{kind: modeSingle, resource: resource}
}

// Resource returns a name of requested resource for single mode and
// empty string otherwise.
func (m Mode) Resource() string {
	return m.resource
}

func (m Mode) String() string {
	switch m.kind {
	case modeCurated:
		return "curated"
	case modeComplete:
		return "complete"
	}

	return "single"
}

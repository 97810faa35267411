// Package codec centralizes payload encoding for selection snapshots.
//
// Snapshot files are self-describing: the codec name is stored in the
// snapshot header, and the codec is selected by name when the snapshot is
// read back. Changing codecs is therefore a compatibility boundary for
// bytes written with older codecs.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
//
// This affects newly written snapshots only; existing snapshots record
// their codec name and are decoded with that codec on load.
var Default Codec = JSON{}

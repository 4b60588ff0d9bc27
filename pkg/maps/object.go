package maps

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is implemented by every class that the browser runtime instantiates
// through its constructor.
type Object interface {
	json.Marshaler
	ClassName() string
}

// envelope is the wire shape of a constructor call.
type envelope struct {
	Cls string            `json:"cls"`
	Arg []json.RawMessage `json:"arg"`
	Mkr []json.RawMessage `json:"mkr,omitempty"`
}

// positional returns the constructor arguments with trailing unset (nil)
// positions dropped. Unset positions before the last set one stay as null so
// later arguments keep their index.
func positional(values ...any) []any {
	last := -1
	for idx, value := range values {
		if value != nil {
			last = idx
		}
	}
	return append([]any{}, values[:last+1]...)
}

func marshalObject(cls string, values ...any) ([]byte, error) {
	return json.Marshal(struct {
		Cls string `json:"cls"`
		Arg []any  `json:"arg"`
	}{Cls: cls, Arg: positional(values...)})
}

func decodeEnvelope(data []byte, cls string) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return envelope{}, fmt.Errorf("maps: decode %s: %w", cls, err)
	}
	if env.Cls != cls {
		return envelope{}, fmt.Errorf("maps: decode %s: unexpected class %q", cls, env.Cls)
	}
	return env, nil
}

// argAt decodes the argument at idx into dst. It reports false when the
// position is absent or null.
func argAt(args []json.RawMessage, idx int, dst any) (bool, error) {
	if idx >= len(args) {
		return false, nil
	}
	raw := bytes.TrimSpace(args[idx])
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("maps: decode argument %d: %w", idx, err)
	}
	return true, nil
}

var (
	_ Object = LatLng{}
	_ Object = LatLngBounds{}
	_ Object = Point{}
	_ Object = Size{}
	_ Object = MarkerImage{}
	_ Object = (*Marker)(nil)
	_ Object = (*Map)(nil)
)

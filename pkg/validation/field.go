package validation

import (
	"bytes"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Field is a string input value that remembers how it arrived in the request
// body. Present is false when the key was absent, IsString is false when the
// key held anything other than a JSON string (null included). Value is
// already trimmed.
type Field struct {
	Value    string
	Present  bool
	IsString bool
}

func NewField(value string) Field {
	return Field{Value: strings.TrimSpace(value), Present: true, IsString: true}
}

func (f *Field) UnmarshalJSON(data []byte) error {
	f.Present = true
	f.IsString = false
	f.Value = ""

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}

	f.IsString = true
	f.Value = strings.TrimSpace(s)
	return nil
}

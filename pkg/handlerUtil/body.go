package handlerUtil

import (
	"bytes"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

// JSON is the codec for request and response bodies. Object keys must match
// the json tags exactly; keys differing only in case are unknown keys.
var JSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

// DecodeJSONBody decodes the request body with JSON. An empty body decodes
// as an empty object, anything that is not a JSON object yields
// ErrMalformedBody.
func DecodeJSONBody(c *fiber.Ctx, out interface{}) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	if body[0] != '{' {
		return ErrMalformedBody
	}

	if err := JSON.Unmarshal(body, out); err != nil {
		return ErrMalformedBody
	}
	return nil
}

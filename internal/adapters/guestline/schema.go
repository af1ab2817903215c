package guestline

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Only the fields the filter pipeline relies on are constrained; anything
// else the upstream sends is allowed through.
const hotelsSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id"],
    "properties": {
      "id":         {"type": "string"},
      "name":       {"type": ["string", "null"]},
      "starRating": {"type": ["string", "number", "null"]},
      "images": {
        "type": ["array", "null"],
        "items": {"type": "object", "properties": {"url": {"type": ["string", "null"]}}}
      }
    }
  }
}`

const roomsSchemaJSON = `{
  "type": "object",
  "required": ["rooms"],
  "properties": {
    "rooms": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "occupancy"],
        "properties": {
          "id": {"type": "string"},
          "occupancy": {
            "type": "object",
            "required": ["maxAdults", "maxChildren"],
            "properties": {
              "maxAdults":   {"type": "integer", "minimum": 0},
              "maxChildren": {"type": "integer", "minimum": 0},
              "maxOverall":  {"type": ["integer", "null"], "minimum": 0}
            }
          }
        }
      }
    }
  }
}`

var (
	hotelsSchema = mustSchema(hotelsSchemaJSON)
	roomsSchema  = mustSchema(roomsSchemaJSON)
)

type payloadSchema struct{ s *gojsonschema.Schema }

func mustSchema(src string) payloadSchema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("guestline: bad schema: %v", err))
	}
	return payloadSchema{s: s}
}

// check reports ErrInvalidPayload when body is not JSON or does not match.
func (p payloadSchema) check(body []byte) error {
	res, err := p.s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if res.Valid() {
		return nil
	}
	errs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		errs = append(errs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(errs, "; "))
}

package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const itemsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "completed"],
    "properties": {
      "id": {"type": "integer", "minimum": 0},
      "text": {"type": "string"},
      "completed": {"type": "boolean"},
      "createdAt": {"type": "string"},
      "dueDate": {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
      "dueTime": {"type": ["string", "null"], "pattern": "^\\d{2}:\\d{2}$"},
      "dueDateTime": {"type": ["string", "null"]},
      "shareType": {"enum": ["personal", "team", null]},
      "author": {"type": ["string", "null"]},
      "authorName": {"type": ["string", "null"]}
    }
  }
}`

const messagesSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "username", "text", "timestamp"],
    "properties": {
      "id": {"type": "integer"},
      "username": {"type": "string"},
      "displayName": {"type": ["string", "null"]},
      "text": {"type": "string"},
      "timestamp": {"type": "string"},
      "isSystem": {"type": "boolean"}
    }
  }
}`

const usersSchema = `{
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["username"],
    "properties": {
      "username": {"type": "string", "minLength": 1},
      "displayName": {"type": ["string", "null"]},
      "password": {"type": "string"}
    }
  }
}`

const sessionSchema = `{
  "type": "object",
  "required": ["username"],
  "properties": {
    "username": {"type": "string", "minLength": 1},
    "displayName": {"type": ["string", "null"]}
  }
}`

var (
	itemsValidator    = mustCompile("items.json", itemsSchema)
	messagesValidator = mustCompile("messages.json", messagesSchema)
	usersValidator    = mustCompile("users.json", usersSchema)
	sessionValidator  = mustCompile("session.json", sessionSchema)
)

func mustCompile(url, schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, strings.NewReader(schema)); err != nil {
		panic(fmt.Sprintf("records: add schema %s: %v", url, err))
	}
	s, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("records: compile schema %s: %v", url, err))
	}
	return s
}

// validate checks raw JSON against schema before it is decoded into structs.
func validate(schema *jsonschema.Schema, raw string) error {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(leafMessages(ve), "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func leafMessages(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{loc + ": " + ve.Message}
	}
	var out []string
	for _, c := range ve.Causes {
		out = append(out, leafMessages(c)...)
	}
	return out
}

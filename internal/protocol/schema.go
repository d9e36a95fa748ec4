package protocol

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed client.schema.json
var clientSchemaJSON string

var clientSchema = jsonschema.MustCompileString("client.schema.json", clientSchemaJSON)

// Validate checks a raw client message against the client schema and
// returns its envelope.
func Validate(raw []byte) (Envelope, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return Envelope{}, fmt.Errorf("malformed message: %w", err)
	}
	if err := clientSchema.Validate(doc); err != nil {
		return Envelope{}, fmt.Errorf("invalid message: %w", err)
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("malformed message: %w", err)
	}
	return env, nil
}

package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema that model output must satisfy.
type Schema struct {
	Name       string
	Definition map[string]any
}

// ErrInvalidResponse means the model answered with something that is not
// the JSON we asked for.
type ErrInvalidResponse struct {
	Content string
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

var compiledSchemas sync.Map // name -> *jsonschema.Schema

// DecodeJSON strips markdown code fences from text, checks the result
// against schema and unmarshals it into out.
func DecodeJSON(text string, schema *Schema, out any) error {
	clean := stripFences(text)

	var parsed any
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return &ErrInvalidResponse{Content: text, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if schema != nil {
		compiled, err := compile(schema)
		if err != nil {
			return &ErrInvalidResponse{Content: text, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
		}
		if err := compiled.Validate(parsed); err != nil {
			return &ErrInvalidResponse{Content: text, Err: fmt.Errorf("schema validation failed: %w", err)}
		}
	}

	if err := json.Unmarshal([]byte(clean), out); err != nil {
		return &ErrInvalidResponse{Content: text, Err: err}
	}
	return nil
}

func stripFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func compile(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// the compiler wants a decoded JSON value, not Go maps with typed slices
	raw, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	compiledSchemas.Store(schema.Name, compiled)
	return compiled, nil
}

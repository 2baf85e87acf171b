package gradebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadJSON decodes a gradebook document. The document is checked against
// the gradebook schema before decoding and the result is validated, so a
// returned Gradebook always satisfies every invariant.
func ReadJSON(r io.Reader) (*Gradebook, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read gradebook: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &SchemaError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var gb Gradebook
	if err := json.Unmarshal(raw, &gb); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return New(gb.Assignments, gb.Students)
}

// WriteJSON encodes gb with four-space indentation. Characters such as
// & and < are written as is.
func WriteJSON(w io.Writer, gb *Gradebook) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(gb); err != nil {
		return fmt.Errorf("encode gradebook: %w", err)
	}
	return nil
}

// ReadYAML decodes a YAML gradebook document using the same schema as
// ReadJSON.
func ReadYAML(r io.Reader) (*Gradebook, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read gradebook: %w", err)
	}

	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, &SchemaError{Err: fmt.Errorf("invalid YAML: %w", err)}
	}

	// Normalize to the value shapes encoding/json produces so the schema
	// validator sees the same types for both formats.
	asJSON, err := json.Marshal(tree)
	if err != nil {
		return nil, &SchemaError{Err: err}
	}
	var doc any
	if err := json.Unmarshal(asJSON, &doc); err != nil {
		return nil, &SchemaError{Err: err}
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var gb Gradebook
	if err := yaml.Unmarshal(raw, &gb); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return New(gb.Assignments, gb.Students)
}

// WriteYAML encodes gb as a YAML document.
func WriteYAML(w io.Writer, gb *Gradebook) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(gb); err != nil {
		return fmt.Errorf("encode gradebook: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode gradebook: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

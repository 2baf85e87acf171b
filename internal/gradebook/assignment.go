package gradebook

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type assignmentRecord struct {
	Name string `json:"name" yaml:"name"`
	ID   *int   `json:"id,omitempty" yaml:"id,omitempty"`
}

// MarshalJSON writes a plain string for name-only assignments and a
// record otherwise, so documents keep the form they were loaded in.
func (a Assignment) MarshalJSON() ([]byte, error) {
	if !a.IsRecord() {
		return json.Marshal(a.Name)
	}
	return json.Marshal(assignmentRecord{Name: a.Name, ID: a.ID})
}

func (a *Assignment) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*a = Assignment{Name: name}
		return nil
	}

	var rec assignmentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("assignment: %w", err)
	}
	*a = Assignment{Name: rec.Name, ID: rec.ID, record: true}
	return nil
}

func (a Assignment) MarshalYAML() (any, error) {
	if !a.IsRecord() {
		return a.Name, nil
	}
	return assignmentRecord{Name: a.Name, ID: a.ID}, nil
}

func (a *Assignment) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		*a = Assignment{Name: name}
		return nil
	}

	var rec assignmentRecord
	if err := node.Decode(&rec); err != nil {
		return fmt.Errorf("assignment: %w", err)
	}
	*a = Assignment{Name: rec.Name, ID: rec.ID, record: true}
	return nil
}

package slack

import (
	"encoding/json"
	"fmt"
)

// DndEndSchema is the generic Slack envelope: an ok flag plus whatever
// method-specific fields came back with it.
type DndEndSchema struct {
	OK    bool                       `json:"ok"              yaml:"ok"`
	Error string                     `json:"error,omitempty" yaml:"error,omitempty"`
	Extra map[string]json.RawMessage `json:"-"               yaml:"extra,omitempty"`
}

// UnmarshalJSON keeps every field other than ok and error in Extra.
func (s *DndEndSchema) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage

	err := json.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	*s = DndEndSchema{}

	if raw, ok := fields["ok"]; ok {
		err = json.Unmarshal(raw, &s.OK)
		if err != nil {
			return fmt.Errorf("failed to decode ok: %w", err)
		}

		delete(fields, "ok")
	}

	if raw, ok := fields["error"]; ok {
		err = json.Unmarshal(raw, &s.Error)
		if err != nil {
			return fmt.Errorf("failed to decode error: %w", err)
		}

		delete(fields, "error")
	}

	if len(fields) > 0 {
		s.Extra = fields
	}

	return nil
}

// MarshalJSON flattens Extra back next to ok and error.
func (s DndEndSchema) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(s.Extra)+2)
	for key, value := range s.Extra {
		fields[key] = value
	}

	fields["ok"] = s.OK
	if s.Error != "" {
		fields["error"] = s.Error
	}

	return json.Marshal(fields)
}

// MarshalYAML renders the same document as MarshalJSON.
func (s DndEndSchema) MarshalYAML() (interface{}, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var fields map[string]any

	err = json.Unmarshal(data, &fields)
	if err != nil {
		return nil, err
	}

	return fields, nil
}

// Field decodes the extra field name into target. It reports false when the
// field is absent.
func (s *DndEndSchema) Field(name string, target any) (bool, error) {
	raw, ok := s.Extra[name]
	if !ok {
		return false, nil
	}

	err := json.Unmarshal(raw, target)
	if err != nil {
		return true, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return true, nil
}

// NextCursor returns response_metadata.next_cursor, or "" on the last page.
func (s *DndEndSchema) NextCursor() string {
	var metadata struct {
		NextCursor string `json:"next_cursor"`
	}

	found, err := s.Field("response_metadata", &metadata)
	if !found || err != nil {
		return ""
	}

	return metadata.NextCursor
}

// AddEmojiRequest is the body of admin.emoji.add.
type AddEmojiRequest struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url"  yaml:"url"`
}

// AddEmojiAliasRequest is the body of admin.emoji.addAlias.
type AddEmojiAliasRequest struct {
	Name     string `json:"name"      yaml:"name"`
	AliasFor string `json:"alias_for" yaml:"alias_for"`
}

// RemoveEmojiRequest is the body of admin.emoji.remove.
type RemoveEmojiRequest struct {
	Name string `json:"name" yaml:"name"`
}

// RenameEmojiRequest is the body of admin.emoji.rename.
type RenameEmojiRequest struct {
	Name    string `json:"name"     yaml:"name"`
	NewName string `json:"new_name" yaml:"new_name"`
}

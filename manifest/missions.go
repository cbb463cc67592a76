package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Missions maps mission identifiers to image file names. Unlike a plain Go
// map it remembers insertion order, and that order is kept when encoding to
// and decoding from JSON.
type Missions struct {
	keys  []string
	files map[string][]string
}

// Set stores the file list for a mission. A new mission is appended to the
// key order; an existing one keeps its position.
func (m *Missions) Set(missionID string, files []string) {
	if m.files == nil {
		m.files = make(map[string][]string)
	}
	if _, ok := m.files[missionID]; !ok {
		m.keys = append(m.keys, missionID)
	}
	m.files[missionID] = files
}

// Get returns the file list for a mission.
func (m Missions) Get(missionID string) ([]string, bool) {
	files, ok := m.files[missionID]
	return files, ok
}

// Keys returns the mission identifiers in order.
func (m Missions) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of missions.
func (m Missions) Len() int {
	return len(m.keys)
}

func (m Missions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalRaw(k)
		if err != nil {
			return nil, err
		}
		files := m.files[k]
		if files == nil {
			files = []string{}
		}
		val, err := marshalRaw(files)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Missions) UnmarshalJSON(data []byte) error {
	*m = Missions{}
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("byMission: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("byMission: expected key, got %v", tok)
		}
		var files []string
		if err := dec.Decode(&files); err != nil {
			return fmt.Errorf("byMission[%q]: %w", key, err)
		}
		m.Set(key, files)
	}

	_, err = dec.Token() // closing brace
	return err
}

// marshalRaw encodes v without HTML escaping so mission and file names are
// written as found on disk.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

package typedid

import "encoding/json"

// MarshalJSON encodes the identifier exactly as the raw I encodes: no
// wrapper envelope, no tag metadata. Data written with bare I values stays
// readable after adopting the wrapper, and vice versa.
func (id ID[I, Tag]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON decodes a raw I and wraps it. Map keys also arrive through
// this path, always quoted, so when the direct decode fails and the payload
// is a JSON string the interior is retried as a bare scalar; that lets
// numeric-backed ids key maps. If the retry fails too, the direct decode's
// error is returned, so failures stay exactly what decoding a raw I would
// have produced.
func (id *ID[I, Tag]) UnmarshalJSON(data []byte) error {
	err := json.Unmarshal(data, &id.value)
	if err == nil {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if json.Unmarshal(data, &s) == nil {
			if json.Unmarshal([]byte(s), &id.value) == nil {
				return nil
			}
		}
	}
	return err
}

// MarshalText emits the raw identifier's scalar form without JSON string
// quoting. encoding/json consumes this when the identifier keys a map, so a
// map[ID]V object has the same key shape as a map[I]V object.
func (id ID[I, Tag]) MarshalText() ([]byte, error) {
	data, err := json.Marshal(id.value)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return []byte(s), nil
	}
	return data, nil
}

// UnmarshalText decodes the form produced by MarshalText. The text is first
// retried as a JSON string so types with their own text forms (plain
// strings, UUIDs) go through I's own decoding; bare scalars such as numbers
// fall back to direct decoding.
func (id *ID[I, Tag]) UnmarshalText(text []byte) error {
	quoted, err := json.Marshal(string(text))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(quoted, &id.value); err == nil {
		return nil
	}
	return json.Unmarshal(text, &id.value)
}

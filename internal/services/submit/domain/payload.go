package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// FileKey is the reserved payload key carrying the encoded attachment
const FileKey = "file_b64"

// Field is one top-level key/value of a Payload
type Field struct {
	Key   string
	Value json.RawMessage
}

// Payload is an ordered JSON object. Keys keep first-seen position;
// setting an existing key replaces its value in place.
type Payload struct {
	fields []Field
	index  map[string]int
}

var (
	// ErrNotObject is returned by ParseObject for valid JSON that is not an object
	ErrNotObject = errors.New("payload: top-level value is not an object")
	// ErrTrailingData is returned when more than one JSON value is present
	ErrTrailingData = errors.New("payload: unexpected trailing data")
)

// ParseObject parses text as exactly one JSON object. Numbers keep their
// literal form; duplicate keys resolve to the last value.
func ParseObject(text string) (Payload, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	var whole json.RawMessage
	if err := dec.Decode(&whole); err != nil {
		return Payload{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}
		return Payload{}, err
	}
	if bytes.TrimSpace(whole)[0] != '{' {
		return Payload{}, ErrNotObject
	}

	// second pass walks the validated object keeping key order
	dec = json.NewDecoder(bytes.NewReader(whole))
	if _, err := dec.Token(); err != nil {
		return Payload{}, err
	}
	var p Payload
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return Payload{}, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Payload{}, err
		}
		p.Set(kt.(string), raw)
	}
	return p, nil
}

// Set stores v under key, replacing any earlier value without moving the key
func (p *Payload) Set(key string, v json.RawMessage) {
	if p.index == nil {
		p.index = map[string]int{}
	}
	if i, ok := p.index[key]; ok {
		p.fields[i].Value = v
		return
	}
	p.index[key] = len(p.fields)
	p.fields = append(p.fields, Field{Key: key, Value: v})
}

// SetString stores a JSON string value
func (p *Payload) SetString(key, s string) {
	b, _ := json.Marshal(s)
	p.Set(key, b)
}

// Get returns the raw value stored under key
func (p Payload) Get(key string) (json.RawMessage, bool) {
	i, ok := p.index[key]
	if !ok {
		return nil, false
	}
	return p.fields[i].Value, true
}

// Keys returns the keys in order
func (p Payload) Keys() []string {
	out := make([]string, len(p.fields))
	for i, f := range p.fields {
		out[i] = f.Key
	}
	return out
}

// Len reports the number of top-level keys
func (p Payload) Len() int { return len(p.fields) }

// WithFile returns a copy of p with file_b64 set last-write-wins
func (p Payload) WithFile(encoded string) Payload {
	out := Payload{fields: append([]Field(nil), p.fields...), index: make(map[string]int, len(p.fields)+1)}
	for k, v := range p.index {
		out.index[k] = v
	}
	out.SetString(FileKey, encoded)
	return out
}

// MarshalJSON writes the fields in order
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if len(f.Value) == 0 {
			buf.WriteString("null")
			continue
		}
		if err := json.Compact(&buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// SocialLinks maps a social network name (instagram, facebook, ...) to its
// profile URL. The key set is open and insertion order is preserved on the
// wire, so the admin panel renders networks in the order they were added.
// A key may be present without a URL, which encodes as null.
type SocialLinks struct {
	keys   []string
	values map[string]*string
}

// NewSocialLinks builds links from key, url pairs.
func NewSocialLinks(pairs ...string) SocialLinks {
	var s SocialLinks
	for i := 0; i+1 < len(pairs); i += 2 {
		url := pairs[i+1]
		s.Set(pairs[i], &url)
	}
	return s
}

func (s SocialLinks) Len() int {
	return len(s.keys)
}

// Keys returns the keys in insertion order.
func (s SocialLinks) Keys() []string {
	return slices.Clone(s.keys)
}

func (s SocialLinks) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Get returns the URL stored under key. ok is false when the key is absent;
// a present key without URL yields "" and true.
func (s SocialLinks) Get(key string) (url string, ok bool) {
	v, ok := s.values[key]
	if !ok || v == nil {
		return "", ok
	}
	return *v, true
}

// Set adds or replaces key. New keys are appended after the existing ones.
func (s *SocialLinks) Set(key string, url *string) {
	if s.values == nil {
		s.values = make(map[string]*string)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	if url != nil {
		v := *url
		url = &v
	}
	s.values[key] = url
}

// Delete removes key and reports whether it was present.
func (s *SocialLinks) Delete(key string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
	return true
}

func (s SocialLinks) Clone() SocialLinks {
	var out SocialLinks
	for _, k := range s.keys {
		out.Set(k, s.values[k])
	}
	return out
}

// Merge returns the key-wise union of s and other. Keys in other overwrite
// the ones in s; keys only in other are appended in other's order.
func (s SocialLinks) Merge(other SocialLinks) SocialLinks {
	out := s.Clone()
	for _, k := range other.keys {
		out.Set(k, other.values[k])
	}
	return out
}

// Equal compares keys, order and values.
func (s SocialLinks) Equal(other SocialLinks) bool {
	if !slices.Equal(s.keys, other.keys) {
		return false
	}
	for _, k := range s.keys {
		a, b := s.values[k], other.values[k]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	return true
}

func (s SocialLinks) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *SocialLinks) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("social links: expected object, got %v", tok)
	}

	var out SocialLinks
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("social links: unexpected key %v", keyTok)
		}
		var url *string
		if err := dec.Decode(&url); err != nil {
			return fmt.Errorf("social links: value of %q: %w", key, err)
		}
		out.Set(key, url)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

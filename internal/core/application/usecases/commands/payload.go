package commands

import (
	"github.com/mitchellh/mapstructure"

	"checkout/internal/core/domain/model/order"
)

// Payload is the raw nested key/value structure submitted with a checkout
// request. Accessors are nil-safe: a missing or mistyped key reads as absent
// data, never as an error. Malformed nested structure must not raise.
type Payload map[string]any

// Has reports whether the key is present.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the string value under key, or "" when absent or not a string.
func (p Payload) String(key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

// Map returns the nested payload under key, or an empty Payload.
func (p Payload) Map(key string) Payload {
	switch v := p[key].(type) {
	case Payload:
		return v
	case map[string]any:
		return Payload(v)
	default:
		return Payload{}
	}
}

// Maps returns the slice of nested payloads under key, or nil.
// Non-map elements are skipped.
func (p Payload) Maps(key string) []Payload {
	raw, ok := p[key].([]any)
	if !ok {
		if typed, isTyped := p[key].([]map[string]any); isTyped {
			maps := make([]Payload, 0, len(typed))
			for _, m := range typed {
				maps = append(maps, Payload(m))
			}
			return maps
		}
		return nil
	}

	maps := make([]Payload, 0, len(raw))
	for _, el := range raw {
		if m, isMap := el.(map[string]any); isMap {
			maps = append(maps, Payload(m))
		}
	}
	return maps
}

// Clone returns a deep copy of the payload. Nested maps and slices are
// copied; scalar values are shared.
func (p Payload) Clone() Payload {
	if p == nil {
		return Payload{}
	}

	copied := make(Payload, len(p))
	for k, v := range p {
		copied[k] = cloneValue(v)
	}
	return copied
}

// Without returns a deep copy of the payload with the given key removed.
func (p Payload) Without(key string) Payload {
	copied := p.Clone()
	delete(copied, key)
	return copied
}

// IsEmpty reports whether the payload carries no keys.
func (p Payload) IsEmpty() bool {
	return len(p) == 0
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case Payload:
		return map[string]any(typed.Clone())
	case map[string]any:
		return map[string]any(Payload(typed).Clone())
	case []any:
		copied := make([]any, len(typed))
		for i, el := range typed {
			copied[i] = cloneValue(el)
		}
		return copied
	case []map[string]any:
		copied := make([]any, len(typed))
		for i, el := range typed {
			copied[i] = cloneValue(el)
		}
		return copied
	default:
		return v
	}
}

// DecodeOrderAttributes decodes a sanitized payload into the canonical
// attribute set the order aggregate accepts. Decoding is weakly typed so
// JSON numbers bind to both int and float targets.
func DecodeOrderAttributes(p Payload) (order.OrderAttributes, error) {
	var attrs order.OrderAttributes
	if err := decodePayload(p, &attrs); err != nil {
		return order.OrderAttributes{}, err
	}
	return attrs, nil
}

func decodePayload(p Payload, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any(p))
}

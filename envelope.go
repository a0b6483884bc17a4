package winja

import (
	"encoding/json"
	"fmt"
)

var emptyArray = json.RawMessage("[]")

// extractList normalizes the envelope of a list response. List endpoints
// disagree about their wrapper shape: some return a bare array, some
// {"data": [...]}, some a named key like {"plans": [...]}, and a few nest a
// page under the key ({"reports": {"data": [...]}}). extractList tries, in
// order, the payload itself, the "data" key, then each caller-supplied key,
// descending one level when the key holds an object. If nothing list-shaped
// is found it returns an empty array. It never fails: a malformed response
// must not take down the rest of a page.
func extractList(body []byte, keys ...string) json.RawMessage {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return emptyArray
	}
	return extractListRaw(raw, append([]string{"data"}, keys...), true)
}

func extractListRaw(raw json.RawMessage, keys []string, descend bool) json.RawMessage {
	if isJSONArray(raw) {
		return raw
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return emptyArray
	}

	for _, key := range keys {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if isJSONArray(value) {
			return value
		}
		if descend {
			if inner := extractListRaw(value, keys, false); string(inner) != "[]" {
				return inner
			}
		}
	}

	return emptyArray
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}

// decodeList unmarshals a list response through extractList.
func decodeList[T any](body []byte, keys ...string) ([]T, error) {
	var out []T
	if err := json.Unmarshal(extractList(body, keys...), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal list: %w", err)
	}
	return out, nil
}

// decodeObject unmarshals a single-entity response, unwrapping a {"data": {...}}
// envelope when present.
func decodeObject[T any](body []byte) (T, error) {
	var out T

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && isJSONObject(envelope.Data) {
		if err := json.Unmarshal(envelope.Data, &out); err != nil {
			return out, fmt.Errorf("failed to unmarshal response: %w", err)
		}
		return out, nil
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return out, nil
}

func isJSONObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

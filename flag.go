package winja

import "bytes"

// Flag is a boolean the backend represents as an integer-like 0/1 on the
// wire. Responses are tolerated in whichever shape the endpoint happens to
// emit (true, 1, "1"); outgoing JSON always carries 1 or 0, and multipart
// writes go through multipartPayload.setBool.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "true", "1", `"1"`:
		*f = true
	default:
		*f = false
	}
	return nil
}

// Bool returns the flag as a plain bool.
func (f Flag) Bool() bool {
	return bool(f)
}

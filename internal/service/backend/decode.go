package backend

import "encoding/json"

// decodeLenient unmarshals JSON after rewriting the non-standard NaN,
// Infinity and -Infinity tokens Python encoders emit to null.
func decodeLenient(b []byte, v interface{}) error {
	return json.Unmarshal(sanitizeNonFinite(b), v)
}

func sanitizeNonFinite(b []byte) []byte {
	var out []byte
	inString, escaped := false, false
	last := 0

	for i := 0; i < len(b); i++ {
		c := b[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		var n int
		switch {
		case c == '"':
			inString = true
			continue
		case c == 'N' && hasToken(b[i:], "NaN"):
			n = len("NaN")
		case c == 'I' && hasToken(b[i:], "Infinity"):
			n = len("Infinity")
		case c == '-' && hasToken(b[i:], "-Infinity"):
			n = len("-Infinity")
		default:
			continue
		}

		if out == nil {
			out = make([]byte, 0, len(b))
		}
		out = append(out, b[last:i]...)
		out = append(out, "null"...)
		i += n - 1
		last = i + 1
	}

	if out == nil {
		return b
	}
	return append(out, b[last:]...)
}

func hasToken(b []byte, tok string) bool {
	return len(b) >= len(tok) && string(b[:len(tok)]) == tok
}

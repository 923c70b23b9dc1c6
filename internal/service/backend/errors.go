package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed backend call.
type Kind int

const (
	// KindTransport: the request never produced an HTTP response.
	KindTransport Kind = iota + 1
	// KindStatus: the backend answered with a non-2xx status.
	KindStatus
	// KindPayload: a 2xx body that is unreadable or reports an error itself.
	KindPayload
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindPayload:
		return "payload"
	default:
		return "unknown"
	}
}

// APIError is returned by every Client method. Message holds the text the
// backend supplied, if any, and is shown to users verbatim.
type APIError struct {
	Kind     Kind
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "backend %s %s", e.Endpoint, e.Kind)
	if e.Status != 0 {
		fmt.Fprintf(&b, " status=%d", e.Status)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *APIError) Unwrap() error { return e.Err }

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorBody is the error shape of FastAPI style backends. detail is either a
// string or a list of validation problems.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  json.RawMessage `json:"error"`
}

type validationProblem struct {
	Msg string        `json:"msg"`
	Loc []interface{} `json:"loc"`
}

// extractMessage returns detail, else error, from a JSON error body.
func extractMessage(body []byte) string {
	var eb errorBody
	if err := decodeLenient(body, &eb); err != nil {
		return ""
	}
	if msg := rawText(eb.Detail); msg != "" {
		return msg
	}
	return rawText(eb.Error)
}

func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var problems []validationProblem
	if err := json.Unmarshal(raw, &problems); err == nil {
		msgs := make([]string, 0, len(problems))
		for _, p := range problems {
			if p.Msg == "" {
				continue
			}
			if field := locField(p.Loc); field != "" {
				msgs = append(msgs, field+": "+p.Msg)
			} else {
				msgs = append(msgs, p.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

func locField(loc []interface{}) string {
	if len(loc) == 0 {
		return ""
	}
	if s, ok := loc[len(loc)-1].(string); ok {
		return s
	}
	return ""
}

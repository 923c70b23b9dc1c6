package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndParseDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"age":30}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":"yes"}`))
	}))
	defer srv.Close()

	var out struct {
		Prediction string `json:"prediction"`
	}
	err := NewClient().SendAndParse(context.Background(), &RequestOptions{
		Method: MethodPost,
		URL:    srv.URL,
		Body:   map[string]int{"age": 30},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "yes", out.Prediction)
}

func TestSendAndParseReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"model not loaded"}`))
	}))
	defer srv.Close()

	err := NewClient().SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: srv.URL}, &struct{}{})

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.JSONEq(t, `{"detail":"model not loaded"}`, string(se.Body))
}

func TestSendAndParseUsesCustomDecoder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`raw`))
	}))
	defer srv.Close()

	var seen string
	c := NewClient(WithDecoder(func(b []byte, _ interface{}) error {
		seen = string(b)
		return nil
	}))
	require.NoError(t, c.SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: srv.URL}, &struct{}{}))
	assert.Equal(t, "raw", seen)
}

func TestSendAndParseHonoursCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClient().SendAndParse(ctx, &RequestOptions{Method: MethodGet, URL: srv.URL}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestSendAndParseUsesTransport(t *testing.T) {
	var gotAccept string
	c := NewClient(WithTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotAccept = r.Header.Get("Accept")
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
			Request:    r,
		}, nil
	})))

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: "http://backend.invalid/x"}, &out))
	assert.True(t, out.OK)
	assert.Equal(t, "application/json", gotAccept)
}

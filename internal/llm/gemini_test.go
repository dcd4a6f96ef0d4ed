package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("path = %s, want generateContent call", r.URL.Path)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("credential missing from query string")
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func completionBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(b)
}

func TestCompleteSuccess(t *testing.T) {
	srv := newTestServer(t, 200, completionBody("the completion"))
	defer srv.Close()

	p := NewGeminiProviderWithBaseURL("test-key", "", srv.URL)
	resp, err := p.Complete(context.Background(), NewRequest("", "say something"))
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if resp.Content != "the completion" {
		t.Errorf("Content = %q, want %q", resp.Content, "the completion")
	}
	if resp.Model != DefaultModel {
		t.Errorf("Model = %q, want default %q", resp.Model, DefaultModel)
	}
}

func TestCompleteStatusMapping(t *testing.T) {
	tests := []struct {
		status   int
		wantKind ErrorKind
		wantMsg  string
	}{
		{400, KindBadRequest, "invalid API key"},
		{403, KindForbidden, "quota"},
		{429, KindRateLimited, "rate limit"},
		{500, KindUpstream, "status 500"},
	}

	for _, tt := range tests {
		srv := newTestServer(t, tt.status, `{}`)

		p := NewGeminiProviderWithBaseURL("test-key", "", srv.URL)
		_, err := p.Complete(context.Background(), NewRequest("", "x"))
		srv.Close()

		var ue *UpstreamError
		if !errors.As(err, &ue) {
			t.Fatalf("status %d: error %v is not an UpstreamError", tt.status, err)
		}
		if ue.Kind != tt.wantKind {
			t.Errorf("status %d: kind = %v, want %v", tt.status, ue.Kind, tt.wantKind)
		}
		if ue.Status != tt.status {
			t.Errorf("status %d: recorded status = %d", tt.status, ue.Status)
		}
		if !strings.Contains(ue.Message, tt.wantMsg) {
			t.Errorf("status %d: message %q does not mention %q", tt.status, ue.Message, tt.wantMsg)
		}
	}
}

func TestCompleteMissingShapeIsBadResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"no parts", `{"candidates":[{"content":{"parts":[]}}]}`},
		{"not JSON", `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, 200, tt.body)
			defer srv.Close()

			p := NewGeminiProviderWithBaseURL("test-key", "", srv.URL)
			_, err := p.Complete(context.Background(), NewRequest("", "x"))

			var ue *UpstreamError
			if !errors.As(err, &ue) {
				t.Fatalf("error %v is not an UpstreamError", err)
			}
			if ue.Kind != KindBadResponse {
				t.Errorf("kind = %v, want KindBadResponse", ue.Kind)
			}
		})
	}
}

func TestCompleteUnreachable(t *testing.T) {
	// Closed server: transport failure, not a status failure.
	srv := newTestServer(t, 200, `{}`)
	srv.Close()

	p := NewGeminiProviderWithBaseURL("test-key", "", srv.URL)
	_, err := p.Complete(context.Background(), NewRequest("", "x"))

	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error %v is not an UpstreamError", err)
	}
	if ue.Kind != KindUnreachable {
		t.Errorf("kind = %v, want KindUnreachable", ue.Kind)
	}
}

func TestPingUsesHelloProbe(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		w.Write([]byte(completionBody("Hi")))
	}))
	defer srv.Close()

	p := NewGeminiProviderWithBaseURL("test-key", "", srv.URL)
	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
	if gotPrompt != "Hello" {
		t.Errorf("probe prompt = %q, want %q", gotPrompt, "Hello")
	}
}

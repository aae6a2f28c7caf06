package assistant

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeGemini serves generateContent with a fixed answer and keeps the last body.
type fakeGemini struct {
	mu     sync.Mutex
	answer string
	status int
	body   string
	path   string
	apiKey string
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.body = string(raw)
	f.path = r.URL.Path
	f.apiKey = r.Header.Get("x-goog-api-key")
	status, answer := f.status, f.answer
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
		io.WriteString(w, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`)
		return
	}
	io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":`+answer+`}]}}]}`)
}

func newFakeGemini(t *testing.T, fake *fakeGemini) *GeminiGenerator {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	gen, err := NewGeminiGenerator(context.Background(), GeminiConfig{
		APIKey:     "test-key",
		Model:      "test-model",
		BaseURL:    srv.URL + "/",
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewGeminiGenerator failed: %v", err)
	}
	return gen
}

func TestGeminiGenerator_Generate(t *testing.T) {
	fake := &fakeGemini{answer: `"342"`}
	gen := newFakeGemini(t, fake)

	text, err := gen.Generate(context.Background(), Request{
		Prompt:            "How far?",
		SystemInstruction: "numbers only",
		Search:            true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "342" {
		t.Errorf("Generate = %q, want 342", text)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if !strings.HasSuffix(fake.path, "models/test-model:generateContent") {
		t.Errorf("path = %q, want generateContent on test-model", fake.path)
	}
	if fake.apiKey != "test-key" {
		t.Errorf("api key header = %q, want test-key", fake.apiKey)
	}
	if !strings.Contains(fake.body, "googleSearch") {
		t.Errorf("expected search tool in body: %s", fake.body)
	}
	if !strings.Contains(fake.body, "numbers only") {
		t.Errorf("expected system instruction in body: %s", fake.body)
	}
}

func TestGeminiGenerator_StructuredOutput(t *testing.T) {
	fake := &fakeGemini{answer: `"[]"`}
	gen := newFakeGemini(t, fake)

	if _, err := gen.Generate(context.Background(), BuildInsightsRequest(tripForTest())); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if !strings.Contains(fake.body, "application/json") {
		t.Errorf("expected JSON mime type in body: %s", fake.body)
	}
	if strings.Contains(fake.body, "googleSearch") {
		t.Errorf("insights must not enable search: %s", fake.body)
	}
}

func TestGeminiGenerator_ServerError(t *testing.T) {
	gen := newFakeGemini(t, &fakeGemini{status: http.StatusInternalServerError})

	if _, err := gen.Generate(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Error("expected error on 500")
	}

	// The gateway still collapses it to "no value".
	if _, ok := New(gen).RequestValue(context.Background(), distanceForTest()); ok {
		t.Error("expected ok=false on backend error")
	}
}

func TestNewGenerator_WithoutKey(t *testing.T) {
	gen, err := NewGenerator(context.Background(), GeminiConfig{})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	if _, err := gen.Generate(context.Background(), Request{Prompt: "hi"}); !errors.Is(err, ErrDisabled) {
		t.Errorf("Generate error = %v, want ErrDisabled", err)
	}
}

package domain

import (
	"encoding/json"
	"testing"
)

func TestNewContentResponse(t *testing.T) {
	resp := NewContentResponse("generated text")

	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.Body != `{"content":"generated text"}` {
		t.Errorf("Body = %q, want %q", resp.Body, `{"content":"generated text"}`)
	}
}

func TestNewErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		wantBody   string
	}{
		{
			name:       "missing keyword",
			statusCode: 400,
			message:    "No keyword provided",
			wantBody:   `{"error":"No keyword provided"}`,
		},
		{
			name:       "transport failure",
			statusCode: 500,
			message:    "connection refused",
			wantBody:   `{"error":"connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewErrorResponse(tt.statusCode, tt.message)
			if resp.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, tt.statusCode)
			}
			if resp.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", resp.Body, tt.wantBody)
			}
		})
	}
}

func TestNewErrorResponseWithDetails(t *testing.T) {
	resp := NewErrorResponseWithDetails(429, "Failed to generate content from Groq", "rate limited")

	if resp.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want 429", resp.StatusCode)
	}

	var body ErrorBody
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("Body is not valid JSON: %v", err)
	}
	if body.Error != "Failed to generate content from Groq" {
		t.Errorf("body error = %q, want %q", body.Error, "Failed to generate content from Groq")
	}
	if body.Details != "rate limited" {
		t.Errorf("body details = %q, want %q", body.Details, "rate limited")
	}
}

func TestResponseEnvelopeShape(t *testing.T) {
	// The envelope is the external contract: exactly statusCode and a
	// JSON-encoded string body.
	b, err := json.Marshal(NewContentResponse("X"))
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	want := `{"statusCode":200,"body":"{\"content\":\"X\"}"}`
	if string(b) != want {
		t.Errorf("envelope = %s, want %s", b, want)
	}
}

func TestErrorBodyOmitsEmptyDetails(t *testing.T) {
	resp := NewErrorResponse(400, "No keyword provided")
	if got := resp.Body; got != `{"error":"No keyword provided"}` {
		t.Errorf("details should be omitted when empty, got %q", got)
	}
}

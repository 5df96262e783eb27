// Package domain contains the core domain types for the content generator.
package domain

import (
	"encoding/json"
	"net/http"
)

// Request is the input to the content generator.
type Request struct {
	Keyword string `json:"keyword"`
}

// Response is the envelope returned to the invoking platform. Body is a
// JSON-encoded string holding either a ContentBody or an ErrorBody.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// ContentBody is the success payload carried in Response.Body.
type ContentBody struct {
	Content string `json:"content"`
}

// ErrorBody is the failure payload carried in Response.Body.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewContentResponse returns a 200 envelope carrying the generated content.
func NewContentResponse(content string) *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Body:       encodeBody(ContentBody{Content: content}),
	}
}

// NewErrorResponse returns an envelope with the given status code and error message.
func NewErrorResponse(statusCode int, message string) *Response {
	return &Response{
		StatusCode: statusCode,
		Body:       encodeBody(ErrorBody{Error: message}),
	}
}

// NewErrorResponseWithDetails returns an error envelope that also surfaces the
// raw upstream response text in the details field.
func NewErrorResponseWithDetails(statusCode int, message, details string) *Response {
	return &Response{
		StatusCode: statusCode,
		Body:       encodeBody(ErrorBody{Error: message, Details: details}),
	}
}

// encodeBody marshals a body payload to its JSON string form. The payload
// types above contain only strings, so marshalling cannot fail.
func encodeBody(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}

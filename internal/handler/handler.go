// Package handler provides the Lambda handler for the content generator.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"github.com/Ralphkenny/AI-Content-Generator/internal/domain"
	"github.com/Ralphkenny/AI-Content-Generator/internal/groq"
	"github.com/Ralphkenny/AI-Content-Generator/internal/logging"
)

// upstreamFailureMessage is the fixed error reported when Groq answers with a
// non-200 status. The raw upstream body travels alongside it as details.
const upstreamFailureMessage = "Failed to generate content from Groq"

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}

// ContentGenerator turns a keyword into generated text.
type ContentGenerator interface {
	Generate(ctx context.Context, keyword string) (string, error)
}

// Handler validates incoming requests, forwards the keyword to the generator,
// and maps the outcome to a response envelope.
type Handler struct {
	generator ContentGenerator
}

// New creates a Handler using the given generator.
func New(g ContentGenerator) *Handler {
	return &Handler{generator: g}
}

// Handle processes one content generation request. Every outcome is reported
// inside the response envelope; the error return is always nil so a failed
// generation never fails the invocation itself.
func (h *Handler) Handle(ctx context.Context, req domain.Request) (*domain.Response, error) {
	logger := requestLogger(ctx)

	// Validate request: a rejected request never reaches the upstream
	if req.Keyword == "" {
		logger.Warn("request rejected: no keyword provided")
		return domain.NewErrorResponse(http.StatusBadRequest, "No keyword provided"), nil
	}

	content, err := h.generator.Generate(ctx, req.Keyword)
	if err != nil {
		var upstream *groq.UpstreamError
		if errors.As(err, &upstream) {
			// Pass the upstream status through unchanged.
			logger.WithField("status_code", upstream.StatusCode).Error("groq rejected the request")
			return domain.NewErrorResponseWithDetails(upstream.StatusCode, upstreamFailureMessage, upstream.Body), nil
		}
		logger.Errorf("content generation failed: %v", err)
		return domain.NewErrorResponse(http.StatusInternalServerError, err.Error()), nil
	}

	return domain.NewContentResponse(content), nil
}

// requestLogger returns a log entry carrying the Lambda request id when the
// invocation context provides one.
func requestLogger(ctx context.Context) *logrus.Entry {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return log.WithField("request_id", lc.AwsRequestID)
	}
	return logrus.NewEntry(log)
}

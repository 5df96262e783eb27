// Package main is the entry point for the AI content generator Lambda function.
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/Ralphkenny/AI-Content-Generator/internal/config"
	"github.com/Ralphkenny/AI-Content-Generator/internal/domain"
	"github.com/Ralphkenny/AI-Content-Generator/internal/groq"
	"github.com/Ralphkenny/AI-Content-Generator/internal/handler"
	"github.com/Ralphkenny/AI-Content-Generator/internal/logging"
)

var (
	log *logrus.Logger

	// fwd is built once at cold start and reused across invocations.
	fwd *handler.Handler
)

func init() {
	log = logging.GetLogger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	logging.InitLogger(logging.ParseLevel(cfg.LogLevel))

	fwd = handler.New(groq.NewClient(cfg))
	lambda.Start(handleRequest)
}

// handleRequest routes raw Lambda events to the warmup handler or the
// content handler.
func handleRequest(ctx context.Context, event json.RawMessage) (*domain.Response, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	// Parse the request and delegate to the handler
	var req domain.Request
	if err := json.Unmarshal(event, &req); err != nil {
		log.Errorf("unmarshalling event: %v", err)
		return nil, err
	}

	return fwd.Handle(ctx, req)
}

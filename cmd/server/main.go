package main

import (
	"context"
	"os"

	"cloud.google.com/go/storage"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/gcp"
	"github.com/veridoc/veridoc/internal/ocr"
	"github.com/veridoc/veridoc/internal/server"
	"github.com/veridoc/veridoc/internal/summary"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Optional .env for local development; the deployed environment sets
	// variables directly.
	if err := godotenv.Load(); err == nil {
		log.Info("Loaded configuration from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	ctx := context.Background()

	provider, err := ocr.NewProvider(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Could not initialize OCR provider")
	}
	log.WithField("provider", provider.Name()).Info("OCR provider ready")

	capability := summary.DetectCapability(cfg)
	var summarizer summary.Summarizer
	if capability.Available {
		vertexClient, err := gcp.NewVertexClient(ctx, cfg.VertexProjectID, cfg.VertexRegion, cfg.SummaryModel)
		if err != nil {
			// Degrade to the mock generator rather than refusing to start.
			log.WithError(err).Warn("Vertex AI unavailable; summarization will use mock results")
			capability = summary.Capability{Reason: "vertex client initialization failed"}
		} else {
			defer vertexClient.Close()
			summarizer = summary.NewGeminiSummarizer(vertexClient, log.WithField("component", "summarizer"))
		}
	}
	if !capability.Available {
		log.WithField("reason", capability.Reason).Warn("Summarization backend unavailable")
	}

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		log.WithError(err).Warn("GCS client unavailable; gcsUri inputs will be rejected")
		storageClient = nil
	}

	svc := server.New(cfg, provider, summarizer, capability, storageClient, log)

	if err := funcframework.RegisterHTTPFunctionContext(ctx, "/api/ocr", svc.HandleOCR); err != nil {
		log.WithError(err).Fatal("Could not register OCR handler")
	}
	if err := funcframework.RegisterHTTPFunctionContext(ctx, "/api/summarize", svc.HandleSummarize); err != nil {
		log.WithError(err).Fatal("Could not register summarize handler")
	}

	log.WithField("port", cfg.Port).Info("Starting server")
	if err := funcframework.Start(cfg.Port); err != nil {
		log.WithError(err).Error("Server stopped")
		os.Exit(1)
	}
}

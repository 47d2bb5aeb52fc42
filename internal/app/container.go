package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"skill-bridge/internal/config"
	"skill-bridge/internal/dataset"
	"skill-bridge/internal/domain/forecast"
	"skill-bridge/internal/domain/gnn"
	"skill-bridge/internal/domain/graph"
	"skill-bridge/internal/domain/matching"
	"skill-bridge/internal/domain/taxonomy"
	"skill-bridge/internal/embedding"
	"skill-bridge/internal/usecase"
)

const (
	gnnInputDim  = 64
	gnnHiddenDim = 32

	bootstrapTimeout = 60 * time.Second
)

type Container struct {
	Config     config.Config
	Logger     *zap.Logger
	AnalysisUC usecase.AnalysisUsecase
	SkillUC    usecase.SkillUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger, err := buildLogger(cfg.App.Environment)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	tax := taxonomy.Default()
	embedder := buildEmbedder(ctx, cfg, logger)
	jobs := loadJobs(cfg, logger)
	catalog := loadCatalog(cfg, logger)

	if embedder != nil {
		warmEmbeddings(ctx, embedder, tax, jobs, cfg.Embedding.Workers, logger)
	}

	skillGraph := graph.NewBuilder(embedder, cfg.Model.EdgeThreshold, logger).Build(ctx, jobs)
	logger.Info("skill graph ready",
		zap.Int("nodes", skillGraph.NodeCount()),
		zap.Int("edges", skillGraph.EdgeCount()),
	)

	weights := loadWeights(cfg, tax, logger)
	predictor := gnn.NewPredictor(weights, embedder, logger)
	engine := matching.NewEngine(embedder, logger)
	forecaster := forecast.NewForecaster(tax, catalog, forecast.DefaultEstimator(), logger)

	analysisUC := usecase.NewAnalysisUsecase(
		engine, predictor, forecaster,
		skillGraph, tax, jobs,
		cfg.Model.ConfidenceThreshold, logger,
	)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		AnalysisUC: analysisUC,
		SkillUC:    usecase.NewSkillUsecase(tax),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Logger == nil {
		return nil
	}
	return c.Logger.Sync()
}

func buildLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "production", "prod":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}

// buildEmbedder returns nil when no API key is configured; the service then
// runs in lexical-only mode.
func buildEmbedder(ctx context.Context, cfg config.Config, logger *zap.Logger) embedding.Embedder {
	if cfg.Embedding.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, semantic matching disabled")
		return nil
	}

	gemini, err := embedding.NewGeminiEmbedder(ctx, cfg.Embedding.GeminiAPIKey, cfg.Embedding.Model)
	if err != nil {
		logger.Warn("embedding client init failed, semantic matching disabled", zap.Error(err))
		return nil
	}

	logger.Info("embedding client ready", zap.String("model", gemini.Model()))
	return embedding.NewCache(gemini)
}

func loadJobs(cfg config.Config, logger *zap.Logger) []graph.JobRecord {
	if cfg.Dataset.JobsCSV == "" {
		return dataset.DefaultJobs()
	}

	jobs, err := dataset.LoadJobs(cfg.Dataset.JobsCSV)
	if err != nil {
		logger.Warn("job dataset load failed, using built-in sample",
			zap.String("path", cfg.Dataset.JobsCSV), zap.Error(err))
		return dataset.DefaultJobs()
	}

	logger.Info("job dataset loaded", zap.String("path", cfg.Dataset.JobsCSV), zap.Int("records", len(jobs)))
	return jobs
}

func loadCatalog(cfg config.Config, logger *zap.Logger) *dataset.Catalog {
	if cfg.Dataset.CoursesCSV == "" {
		return dataset.DefaultCatalog()
	}

	catalog, err := dataset.LoadCatalog(cfg.Dataset.CoursesCSV)
	if err != nil {
		logger.Warn("course catalog load failed, using built-in sample",
			zap.String("path", cfg.Dataset.CoursesCSV), zap.Error(err))
		return dataset.DefaultCatalog()
	}

	logger.Info("course catalog loaded", zap.String("path", cfg.Dataset.CoursesCSV), zap.Int("courses", catalog.Len()))
	return catalog
}

func loadWeights(cfg config.Config, tax *taxonomy.Taxonomy, logger *zap.Logger) *gnn.Weights {
	numSkills := len(tax.Ontology())

	if cfg.Model.WeightsPath != "" {
		weights, err := gnn.LoadWeights(cfg.Model.WeightsPath)
		if err == nil {
			logger.Info("model weights loaded", zap.String("path", cfg.Model.WeightsPath))
			return weights
		}
		logger.Warn("model weights load failed, using defaults",
			zap.String("path", cfg.Model.WeightsPath), zap.Error(err))
	}

	return gnn.DefaultWeights(gnnInputDim, gnnHiddenDim, numSkills)
}

// warmEmbeddings precomputes ontology and dataset skill vectors so the first
// requests do not pay per-skill embedding latency.
func warmEmbeddings(ctx context.Context, e embedding.Embedder, tax *taxonomy.Taxonomy, jobs []graph.JobRecord, workers int, logger *zap.Logger) {
	seen := make(map[string]struct{})
	texts := make([]string, 0)
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		texts = append(texts, s)
	}

	for _, sk := range tax.Ontology() {
		add(sk)
	}
	for _, job := range jobs {
		for _, sk := range job.Skills {
			add(sk)
		}
	}

	start := time.Now()
	errs := embedding.Warm(ctx, e, texts, workers)

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	logger.Info("embedding cache warmed",
		zap.Int("skills", len(texts)),
		zap.Int("failed", failed),
		zap.Duration("took", time.Since(start)),
	)
}

package graph

import (
	"context"

	"skill-bridge/internal/domain/normalize"
	"skill-bridge/internal/embedding"

	"go.uber.org/zap"
)

// JobRecord is a single job/skill dataset entry. A record with no skills
// produces no edges and is never an error.
type JobRecord struct {
	ID     string
	Title  string
	Skills []string
}

const DefaultSimilarityThreshold = 0.7

// Builder constructs the skill graph from job records. Explicit skill-job
// edges come from the records; implicit skill-skill edges are added when
// embedding cosine similarity exceeds the threshold. Without an embedder
// only explicit edges are built.
type Builder struct {
	embedder  embedding.Embedder
	threshold float64
	logger    *zap.Logger
}

func NewBuilder(embedder embedding.Embedder, threshold float64, logger *zap.Logger) *Builder {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultSimilarityThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{embedder: embedder, threshold: threshold, logger: logger}
}

func (b *Builder) Build(ctx context.Context, records []JobRecord) *Graph {
	g := newGraph()

	skillSeen := make(map[string]struct{})
	skillOrder := make([]string, 0)

	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		g.addNode(rec.ID, true)
		for _, raw := range rec.Skills {
			sk := normalize.Normalize(raw)
			if sk == "" {
				continue
			}
			g.addNode(sk, false)
			g.addEdge(rec.ID, sk)
			if _, ok := skillSeen[sk]; !ok {
				skillSeen[sk] = struct{}{}
				skillOrder = append(skillOrder, sk)
			}
		}
	}

	if b.embedder != nil {
		b.addSimilarityEdges(ctx, g, skillOrder)
	}

	b.logger.Debug("skill graph built",
		zap.Int("records", len(records)),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g
}

func (b *Builder) addSimilarityEdges(ctx context.Context, g *Graph, skills []string) {
	vectors := make(map[string][]float32, len(skills))
	for _, sk := range skills {
		vec, err := b.embedder.Embed(ctx, sk)
		if err != nil {
			// Degrade to explicit edges only for this skill.
			b.logger.Warn("skill embedding failed", zap.String("skill", sk), zap.Error(err))
			continue
		}
		vectors[sk] = vec
	}

	for i := 0; i < len(skills); i++ {
		va, ok := vectors[skills[i]]
		if !ok {
			continue
		}
		for j := i + 1; j < len(skills); j++ {
			vb, ok := vectors[skills[j]]
			if !ok {
				continue
			}
			if embedding.Cosine(va, vb) > b.threshold {
				g.addEdge(skills[i], skills[j])
			}
		}
	}
}

package gnn

import (
	"context"
	"sort"

	"skill-bridge/internal/domain/graph"
	"skill-bridge/internal/domain/normalize"
	"skill-bridge/internal/embedding"

	"go.uber.org/zap"
)

const (
	// DefaultConfidenceThreshold is the minimum predicted probability for a
	// missing-skill suggestion to be accepted.
	DefaultConfidenceThreshold = 0.65

	// candidatePoolSize bounds how many top-scored ontology skills are
	// considered before threshold filtering.
	candidatePoolSize = 10
)

// Predictor is a two-layer message-passing network over the skill graph.
// Inference is stateless: no request state is retained between calls.
type Predictor struct {
	weights  *Weights
	embedder embedding.Embedder
	logger   *zap.Logger
}

// NewPredictor wires trained weights to an embedder supplying node
// features. Either may be nil, in which case predictions are disabled and
// PredictMissing returns an empty list.
func NewPredictor(weights *Weights, embedder embedding.Embedder, logger *zap.Logger) *Predictor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Predictor{weights: weights, embedder: embedder, logger: logger}
}

func (p *Predictor) Available() bool {
	return p != nil && p.weights != nil && p.embedder != nil
}

// PredictMissing returns ontology skills the candidate likely has or needs
// but did not state, ranked by predicted probability. Results never contain
// a known skill; an empty or edgeless graph yields an empty list.
func (p *Predictor) PredictMissing(ctx context.Context, known []string, g *graph.Graph, ontology []string, threshold float64) []string {
	if !p.Available() || len(ontology) == 0 {
		return nil
	}
	if g.NodeCount() == 0 || g.EdgeCount() == 0 {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}

	probs := p.forward(ctx, g)
	if probs == nil {
		return nil
	}

	type scored struct {
		skill string
		prob  float64
	}
	candidates := make([]scored, 0, len(ontology))
	for i, skill := range ontology {
		if i >= len(probs) {
			break
		}
		candidates = append(candidates, scored{skill: normalize.Normalize(skill), prob: probs[i]})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].prob > candidates[j].prob
	})
	if len(candidates) > candidatePoolSize {
		candidates = candidates[:candidatePoolSize]
	}

	knownSet := normalize.Set(known)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.prob <= threshold {
			continue
		}
		if _, ok := knownSet[c.skill]; ok {
			continue
		}
		out = append(out, c.skill)
	}

	p.logger.Debug("missing skills predicted",
		zap.Int("accepted", len(out)),
		zap.Float64("threshold", threshold),
	)
	return out
}

// forward runs both message-passing layers, pools node states into a graph
// embedding and applies the sigmoid classifier head.
func (p *Predictor) forward(ctx context.Context, g *graph.Graph) []float64 {
	nodes := g.Nodes()
	features := p.nodeFeatures(ctx, g, nodes)
	if features == nil {
		return nil
	}

	h := p.messagePass(g, nodes, features, p.weights.Conv1)
	h = p.messagePass(g, nodes, h, p.weights.Conv2)

	pooled := make([]float64, p.weights.HiddenDim)
	for _, vec := range h {
		for i := 0; i < len(vec) && i < len(pooled); i++ {
			pooled[i] += vec[i]
		}
	}

	logits := p.weights.Classifier.apply(pooled)
	probs := make([]float64, len(logits))
	for i, v := range logits {
		probs[i] = sigmoid(v)
	}
	return probs
}

// nodeFeatures embeds skill nodes directly; a job node gets the mean of its
// neighbor skill embeddings. Vectors are fitted to the trained input width.
func (p *Predictor) nodeFeatures(ctx context.Context, g *graph.Graph, nodes []string) map[string][]float64 {
	features := make(map[string][]float64, len(nodes))
	for _, node := range nodes {
		if g.IsJob(node) {
			continue
		}
		vec, err := p.embedder.Embed(ctx, node)
		if err != nil {
			p.logger.Warn("node embedding failed", zap.String("node", node), zap.Error(err))
			continue
		}
		features[node] = fit(vec, p.weights.InputDim)
	}
	if len(features) == 0 {
		return nil
	}

	for _, node := range nodes {
		if !g.IsJob(node) {
			continue
		}
		agg := make([]float64, p.weights.InputDim)
		count := 0
		for _, neigh := range g.Neighbors(node) {
			vec, ok := features[neigh]
			if !ok {
				continue
			}
			for i := range agg {
				agg[i] += vec[i]
			}
			count++
		}
		if count > 0 {
			for i := range agg {
				agg[i] /= float64(count)
			}
		}
		features[node] = agg
	}
	return features
}

// messagePass computes MLP(x_i + Σ_{j∈N(i)} x_j) for every node.
func (p *Predictor) messagePass(g *graph.Graph, nodes []string, in map[string][]float64, mlp MLP) map[string][]float64 {
	out := make(map[string][]float64, len(in))
	for _, node := range nodes {
		self, ok := in[node]
		if !ok {
			continue
		}
		msg := make([]float64, len(self))
		copy(msg, self)
		for _, neigh := range g.Neighbors(node) {
			vec, ok := in[neigh]
			if !ok {
				continue
			}
			for i := 0; i < len(msg) && i < len(vec); i++ {
				msg[i] += vec[i]
			}
		}
		out[node] = mlp.apply(msg)
	}
	return out
}

func fit(vec []float32, dim int) []float64 {
	out := make([]float64, dim)
	for i := 0; i < dim && i < len(vec); i++ {
		out[i] = float64(vec[i])
	}
	return out
}

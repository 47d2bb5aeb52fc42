package gnn

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
)

// Linear is a dense layer: y = W·x + B, with W shaped [out][in].
type Linear struct {
	W [][]float64 `json:"w"`
	B []float64   `json:"b"`
}

func (l Linear) apply(x []float64) []float64 {
	out := make([]float64, len(l.W))
	for i, row := range l.W {
		sum := 0.0
		for j := 0; j < len(row) && j < len(x); j++ {
			sum += row[j] * x[j]
		}
		if i < len(l.B) {
			sum += l.B[i]
		}
		out[i] = sum
	}
	return out
}

// MLP is the two-layer perceptron applied inside each message-passing layer.
type MLP struct {
	L1 Linear `json:"l1"`
	L2 Linear `json:"l2"`
}

func (m MLP) apply(x []float64) []float64 {
	h := relu(m.L1.apply(x))
	return relu(m.L2.apply(h))
}

// Weights is the trained parameter set of the skill predictor. Trained
// offline on historical job/skill co-occurrence (multi-label binary
// cross-entropy); inference is deterministic given a fixed set.
type Weights struct {
	InputDim   int    `json:"input_dim"`
	HiddenDim  int    `json:"hidden_dim"`
	NumSkills  int    `json:"num_skills"`
	Conv1      MLP    `json:"conv1"`
	Conv2      MLP    `json:"conv2"`
	Classifier Linear `json:"classifier"`
}

func (w *Weights) validate() error {
	if w.InputDim <= 0 || w.HiddenDim <= 0 || w.NumSkills <= 0 {
		return errors.New("weights: non-positive dimensions")
	}
	if len(w.Conv1.L1.W) != w.HiddenDim || len(w.Conv2.L1.W) != w.HiddenDim {
		return errors.New("weights: conv layer shape mismatch")
	}
	if len(w.Classifier.W) != w.NumSkills {
		return errors.New("weights: classifier shape mismatch")
	}
	return nil
}

// LoadWeights reads a trained weight file (JSON).
func LoadWeights(path string) (*Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights: %w", err)
	}
	var w Weights
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse weights: %w", err)
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// DefaultWeights builds a deterministic, seeded parameter set used when no
// trained weight file is configured. Predictions from it carry no learned
// signal; the confidence threshold filters most of them out.
func DefaultWeights(inputDim, hiddenDim, numSkills int) *Weights {
	rng := rand.New(rand.NewSource(1))
	return &Weights{
		InputDim:   inputDim,
		HiddenDim:  hiddenDim,
		NumSkills:  numSkills,
		Conv1:      MLP{L1: randomLinear(rng, hiddenDim, inputDim), L2: randomLinear(rng, hiddenDim, hiddenDim)},
		Conv2:      MLP{L1: randomLinear(rng, hiddenDim, hiddenDim), L2: randomLinear(rng, hiddenDim, hiddenDim)},
		Classifier: randomLinear(rng, numSkills, hiddenDim),
	}
}

func randomLinear(rng *rand.Rand, out, in int) Linear {
	scale := 1.0 / math.Sqrt(float64(in))
	w := make([][]float64, out)
	for i := range w {
		row := make([]float64, in)
		for j := range row {
			row[j] = (rng.Float64()*2 - 1) * scale
		}
		w[i] = row
	}
	return Linear{W: w, B: make([]float64, out)}
}

func relu(x []float64) []float64 {
	for i, v := range x {
		if v < 0 {
			x[i] = 0
		}
	}
	return x
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}

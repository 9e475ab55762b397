// Package knn loads a pre-trained k-nearest-neighbor model from a static
// artifact and classifies feature vectors against it. The model is trained
// elsewhere; nothing here mutates it at runtime.
package knn

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Model is the serialized artifact: k, the stored training points and their
// integer labels.
type Model struct {
	K      int         `json:"k"`
	Points [][]float64 `json:"points"`
	Labels []int       `json:"labels"`
}

// Classifier answers nearest-neighbor queries against a fixed model.
type Classifier struct {
	model Model
	dims  int
}

// Load reads and validates a model artifact from path.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}
	return New(m)
}

// New builds a classifier from an in-memory model.
func New(m Model) (*Classifier, error) {
	if m.K <= 0 {
		return nil, fmt.Errorf("model has invalid k: %d", m.K)
	}
	if len(m.Points) == 0 {
		return nil, fmt.Errorf("model has no training points")
	}
	if len(m.Points) != len(m.Labels) {
		return nil, fmt.Errorf("model has %d points but %d labels", len(m.Points), len(m.Labels))
	}
	if m.K > len(m.Points) {
		return nil, fmt.Errorf("model k (%d) exceeds training point count (%d)", m.K, len(m.Points))
	}
	dims := len(m.Points[0])
	for i, p := range m.Points {
		if len(p) != dims {
			return nil, fmt.Errorf("training point %d has %d dimensions, want %d", i, len(p), dims)
		}
	}
	return &Classifier{model: m, dims: dims}, nil
}

// Dimensions returns the feature vector length the model expects.
func (c *Classifier) Dimensions() int { return c.dims }

type neighbor struct {
	distance float64
	label    int
	index    int
}

// Predict returns the majority label among the k training points nearest to
// features by Euclidean distance. Ties are broken toward the label of the
// single nearest neighbor.
func (c *Classifier) Predict(features []float64) (int, error) {
	if len(features) != c.dims {
		return 0, fmt.Errorf("feature vector has %d dimensions, want %d", len(features), c.dims)
	}

	neighbors := make([]neighbor, len(c.model.Points))
	for i, p := range c.model.Points {
		neighbors[i] = neighbor{
			distance: squaredDistance(features, p),
			label:    c.model.Labels[i],
			index:    i,
		}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].distance != neighbors[j].distance {
			return neighbors[i].distance < neighbors[j].distance
		}
		return neighbors[i].index < neighbors[j].index
	})

	votes := make(map[int]int, c.model.K)
	for _, n := range neighbors[:c.model.K] {
		votes[n.label]++
	}

	best := neighbors[0].label
	bestVotes := votes[best]
	for label, count := range votes {
		if count > bestVotes {
			best, bestVotes = label, count
		}
	}
	return best, nil
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

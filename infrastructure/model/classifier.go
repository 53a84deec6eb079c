package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// treeNode is one node of the exported decision tree. Leaves carry a label;
// internal nodes compare a feature against a threshold and descend left
// (<= threshold) or right.
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Label     string  `json:"label,omitempty"`
	Leaf      bool    `json:"leaf"`
}

// Classifier is the trained spam model. It is opaque to the rest of the
// service beyond Predict and Name.
type Classifier struct {
	ClassifierName string     `json:"classifier"`
	Nodes          []treeNode `json:"nodes"`
}

// LoadClassifier reads the model artifact from disk.
func LoadClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var c Classifier
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if len(c.Nodes) == 0 {
		return nil, errors.New("model artifact has no tree nodes")
	}
	if c.ClassifierName == "" {
		c.ClassifierName = "decision tree"
	}
	return &c, nil
}

// Name reports the classifier type for the response payload.
func (c *Classifier) Name() string {
	return c.ClassifierName
}

// Predict walks the tree over the feature vector and returns the leaf label.
func (c *Classifier) Predict(features []float64) (string, error) {
	idx := 0
	for steps := 0; steps <= len(c.Nodes); steps++ {
		if idx < 0 || idx >= len(c.Nodes) {
			return "", fmt.Errorf("model tree references node %d out of %d", idx, len(c.Nodes))
		}
		node := c.Nodes[idx]
		if node.Leaf {
			return node.Label, nil
		}

		var v float64
		if node.Feature >= 0 && node.Feature < len(features) {
			v = features[node.Feature]
		}
		if v <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
	return "", errors.New("model tree contains a cycle")
}

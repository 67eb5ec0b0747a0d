package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/Isaac25-lgtm/hickory/internal/config"
)

// OnnxClassifier serves the classifier half from an exported ONNX graph. The
// export convention is skl2onnx with zipmap disabled: one "float_input" of
// shape [1, dim] and one "probabilities" output of shape [1, classes]; class
// names live in a classes.json array beside the graph.
//
// onnxruntime sessions reuse their bound tensors across Run calls, so
// inference serializes on an internal mutex.
type OnnxClassifier struct {
	classes []string
	dim     int

	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]

	mu sync.Mutex
}

// NewOnnxClassifier initializes the onnxruntime environment (once per
// process) and opens a session over the exported graph. dim is the
// vectorizer's output dimension, which fixes the input tensor shape.
func NewOnnxClassifier(cfg config.ModelConfig, dim int) (*OnnxClassifier, error) {
	if cfg.OnnxLibrary != "" {
		ort.SetSharedLibraryPath(cfg.OnnxLibrary)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize onnxruntime: %w", err)
		}
	}

	modelPath := cfg.OnnxModelPath()
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("onnx graph missing at %q: %w", modelPath, err)
	}

	classes, err := loadClasses(filepath.Join(cfg.Dir, "classes.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to load class names: %w", err)
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(dim)))
	if err != nil {
		return nil, fmt.Errorf("failed to allocate input tensor: %w", err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(classes))))
	if err != nil {
		return nil, fmt.Errorf("failed to allocate output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{"float_input"},
		[]string{"probabilities"},
		[]ort.Value{input},
		[]ort.Value{output},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create onnx session: %w", err)
	}

	return &OnnxClassifier{
		classes: classes,
		dim:     dim,
		session: session,
		input:   input,
		output:  output,
	}, nil
}

// Classes returns the class names in the graph's output order.
func (c *OnnxClassifier) Classes() []string {
	return append([]string(nil), c.classes...)
}

// Predict runs the graph and returns the label with the highest probability.
func (c *OnnxClassifier) Predict(vec []float64) (string, error) {
	probs, err := c.run(vec)
	if err != nil {
		return "", err
	}

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return c.classes[best], nil
}

// Probabilities returns the graph's probability row in Classes() order.
func (c *OnnxClassifier) Probabilities(vec []float64) ([]float64, bool) {
	probs, err := c.run(vec)
	if err != nil {
		return nil, false
	}
	return probs, true
}

func (c *OnnxClassifier) run(vec []float64) ([]float64, error) {
	if len(vec) != c.dim {
		return nil, fmt.Errorf("feature vector has %d dimensions, onnx graph expects %d", len(vec), c.dim)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	in := c.input.GetData()
	for i, v := range vec {
		in[i] = float32(v)
	}

	if err := c.session.Run(); err != nil {
		return nil, fmt.Errorf("onnx run: %w", err)
	}

	raw := c.output.GetData()
	probs := make([]float64, len(raw))
	for i, p := range raw {
		probs[i] = float64(p)
	}
	return probs, nil
}

// loadClasses reads the JSON array of class names exported beside the graph.
func loadClasses(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var classes []string
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("class list %q is empty", path)
	}
	return classes, nil
}

package lif

import (
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// logisticModulation is the default modulation transform: it squashes the
// raw signal through the logistic function so the resulting gain stays in
// (0, 1) regardless of the signal's magnitude.
func logisticModulation[B tensor.Backend](raw *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return raw.Sigmoid()
}

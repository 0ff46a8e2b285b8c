package tensor

import "fmt"

// Device identifies the compute device a tensor lives on.
type Device int

// Supported compute devices. Only CPU has a backend implementation in this
// module; CUDA and WebGPU are reserved identifiers so configurations can be
// validated uniformly.
const (
	CPU Device = iota
	CUDA
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "cpu"
	case CUDA:
		return "cuda"
	case WebGPU:
		return "webgpu"
	default:
		return "unknown"
	}
}

// ParseDevice maps a device identifier string to a Device.
// Unrecognized identifiers are rejected, never coerced.
func ParseDevice(s string) (Device, error) {
	switch s {
	case "cpu":
		return CPU, nil
	case "cuda":
		return CUDA, nil
	case "webgpu":
		return WebGPU, nil
	default:
		return CPU, fmt.Errorf("unsupported device %q (must be one of cpu, cuda, webgpu)", s)
	}
}

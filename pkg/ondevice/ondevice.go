// Package ondevice describes the in-process inference runtime. Servers have no
// platform model by default, so the zero configuration is Unsupported; hosts
// that embed a model plug their own Runtime in.
package ondevice

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by Generate when the platform has no on-device model.
var ErrUnsupported = errors.New("ondevice: runtime not supported on this platform")

// Runtime generates text without leaving the process.
type Runtime interface {
	// Supported reports whether the platform can run the model right now
	Supported() bool
	// Model names the embedded model
	Model() string
	Generate(ctx context.Context, prompt, systemPrompt string) (string, error)
}

// Unsupported is the Runtime used when no platform model is present.
type Unsupported struct{}

func (Unsupported) Supported() bool { return false }
func (Unsupported) Model() string   { return "" }
func (Unsupported) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	return "", ErrUnsupported
}

// Func adapts a plain function into a supported Runtime.
type Func struct {
	Name string
	Fn   func(ctx context.Context, prompt, systemPrompt string) (string, error)
}

func (f Func) Supported() bool { return f.Fn != nil }
func (f Func) Model() string   { return f.Name }
func (f Func) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if f.Fn == nil {
		return "", ErrUnsupported
	}
	return f.Fn(ctx, prompt, systemPrompt)
}

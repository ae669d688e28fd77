package world

import (
	"fmt"

	"mapview/internal/params"
)

// Engine is the generation collaborator. Implementations must be
// deterministic for identical parameters and must either return a complete
// Data or an error, never a partial result.
type Engine interface {
	Generate(p params.Params) (*Data, error)
}

// GenerationErrorKind separates engine rejections from contract violations.
type GenerationErrorKind uint8

const (
	// ErrEngineRejected means the engine refused the parameters; the user
	// can adjust and retry.
	ErrEngineRejected GenerationErrorKind = iota
	// ErrCorruptOutput means the engine broke the buffer-length contract.
	// This is a defect, not a user-facing recoverable condition.
	ErrCorruptOutput
)

// GenerationError wraps a failed generation attempt.
type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

// Error describes the failure.
func (e *GenerationError) Error() string {
	switch e.Kind {
	case ErrCorruptOutput:
		return fmt.Sprintf("corrupt engine output: %v", e.Err)
	default:
		return fmt.Sprintf("generation failed: %v", e.Err)
	}
}

// Unwrap exposes the underlying error.
func (e *GenerationError) Unwrap() error { return e.Err }

// Bridge owns the lifecycle of the current world. It invokes the engine,
// checks the buffer contract, and replaces the published Data atomically:
// the previous world stays available until a new one is fully validated.
type Bridge struct {
	engine  Engine
	current *Data
}

// NewBridge constructs a Bridge around the provided engine.
func NewBridge(engine Engine) *Bridge {
	return &Bridge{engine: engine}
}

// Current returns the most recently published world, or nil before the
// first successful generation.
func (b *Bridge) Current() *Data { return b.current }

// Generate runs the engine synchronously with validated parameters and
// publishes the result. On any failure the previously published world is
// left untouched.
func (b *Bridge) Generate(p params.Params) (*Data, error) {
	data, err := b.engine.Generate(p)
	if err != nil {
		return nil, &GenerationError{Kind: ErrEngineRejected, Err: err}
	}
	if err := checkContract(data, p); err != nil {
		return nil, &GenerationError{Kind: ErrCorruptOutput, Err: err}
	}
	b.current = data
	return data, nil
}

func checkContract(d *Data, p params.Params) error {
	if d == nil {
		return fmt.Errorf("engine returned no data")
	}
	if d.Width != p.Width || d.Height != p.Height {
		return fmt.Errorf("dimensions %dx%d do not match requested %dx%d",
			d.Width, d.Height, p.Width, p.Height)
	}
	total := d.Size().Cells()
	if total == 0 {
		return fmt.Errorf("degenerate dimensions %dx%d", d.Width, d.Height)
	}
	if len(d.Heightmap) != total {
		return fmt.Errorf("heightmap length %d, want %d", len(d.Heightmap), total)
	}
	if len(d.BiomeIDs) != total {
		return fmt.Errorf("biome buffer length %d, want %d", len(d.BiomeIDs), total)
	}
	if len(d.ProvinceIDs) != total {
		return fmt.Errorf("province buffer length %d, want %d", len(d.ProvinceIDs), total)
	}
	if len(d.RegionIDs) != total {
		return fmt.Errorf("region buffer length %d, want %d", len(d.RegionIDs), total)
	}
	for id, prov := range d.Provinces {
		if id == 0 {
			return fmt.Errorf("province table contains reserved id 0")
		}
		if _, ok := d.Regions[prov.Region]; prov.Region != 0 && !ok {
			return fmt.Errorf("province %d references unknown region %d", id, prov.Region)
		}
	}
	return nil
}

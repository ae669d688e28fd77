package params

import (
	"fmt"
	"math"
)

// ValidationError reports the first parameter that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

// Error formats the failure as "field: reason".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func fail(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks every field against its documented bounds and returns a
// normalized copy on success. The first violation wins and nothing is
// partially applied. A zero seed is resolved from the clock so the returned
// parameter set is always reproducible as-is.
func Validate(p Params) (Params, *ValidationError) {
	if int(p.WorldType) >= len(worldTypeNames) {
		return Params{}, fail("world_type", "unknown world type %d", p.WorldType)
	}
	if p.Width < MinMapDim || p.Width > MaxMapDim {
		return Params{}, fail("width", "must be in [%d, %d], got %d", MinMapDim, MaxMapDim, p.Width)
	}
	if p.Height < MinMapDim || p.Height > MaxMapDim {
		return Params{}, fail("height", "must be in [%d, %d], got %d", MinMapDim, MaxMapDim, p.Height)
	}
	if err := checkUnit("temperature", p.Temperature, -1, 1); err != nil {
		return Params{}, err
	}
	if err := checkUnit("humidity", p.Humidity, -1, 1); err != nil {
		return Params{}, err
	}
	if err := checkUnit("elevation", p.Elevation, -1, 1); err != nil {
		return Params{}, err
	}
	if err := checkUnit("island_density", p.IslandDensity, 0, 1); err != nil {
		return Params{}, err
	}
	maxProv := MaxProvinceCount(p.Width, p.Height)
	if p.ProvinceCount < MinProvinceCount || p.ProvinceCount > maxProv {
		return Params{}, fail("provinces", "must be in [%d, %d] for a %dx%d map, got %d",
			MinProvinceCount, maxProv, p.Width, p.Height, p.ProvinceCount)
	}
	if p.Seed == 0 {
		p.Seed = now().UnixNano()
	}
	return p, nil
}

func checkUnit(field string, v, min, max float64) *ValidationError {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fail(field, "must be finite, got %v", v)
	}
	if v < min || v > max {
		return fail(field, "must be in [%g, %g], got %g", min, max, v)
	}
	return nil
}

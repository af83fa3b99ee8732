package slidemenu

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

const (
	// velocityWindow bounds how far back samples contribute to the fit.
	velocityWindow = 100 * time.Millisecond

	// maxVelocitySamples caps the retained history per gesture.
	maxVelocitySamples = 20
)

// Sample is a pointer position observed at a point in time.
type Sample struct {
	Position Point
	Time     time.Time
}

// VelocityEstimator derives the horizontal pointer velocity from the
// samples of the current gesture.
type VelocityEstimator struct {
	samples     []Sample
	maxVelocity float64
}

// NewVelocityEstimator creates an estimator whose results are clamped to
// ±maxVelocity cells per millisecond. A non-positive limit disables clamping.
func NewVelocityEstimator(maxVelocity float64) *VelocityEstimator {
	return &VelocityEstimator{
		samples:     make([]Sample, 0, maxVelocitySamples),
		maxVelocity: maxVelocity,
	}
}

// Reset drops all samples. Called at pointer-down.
func (v *VelocityEstimator) Reset() {
	v.samples = v.samples[:0]
}

// AddSample appends a sample, evicting the oldest once the history is full.
func (v *VelocityEstimator) AddSample(p Point, t time.Time) {
	if len(v.samples) == maxVelocitySamples {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:len(v.samples)-1]
	}
	v.samples = append(v.samples, Sample{Position: p, Time: t})
}

// Len reports the number of retained samples.
func (v *VelocityEstimator) Len() int {
	return len(v.samples)
}

// XVelocity returns the horizontal velocity in cells per millisecond,
// fitted by least squares over the samples inside the recent window.
func (v *VelocityEstimator) XVelocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}

	newest := v.samples[len(v.samples)-1].Time
	ts := make([]float64, 0, len(v.samples))
	xs := make([]float64, 0, len(v.samples))
	for _, s := range v.samples {
		age := newest.Sub(s.Time)
		if age > velocityWindow {
			continue
		}
		// Time axis is milliseconds relative to the newest sample.
		ts = append(ts, -float64(age)/float64(time.Millisecond))
		xs = append(xs, s.Position.X)
	}
	if len(ts) < 2 || ts[0] == ts[len(ts)-1] {
		return 0
	}

	_, slope := stat.LinearRegression(ts, xs, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0
	}
	if v.maxVelocity > 0 {
		slope = math.Max(-v.maxVelocity, math.Min(v.maxVelocity, slope))
	}
	return slope
}

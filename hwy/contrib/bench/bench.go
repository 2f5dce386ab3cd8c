// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/ajroetker/go-pixelway/hwy/contrib/pixel"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid benchmark options")

// Measurer times one run of a variant over an input.
//
// Implementations must not modify in.
type Measurer interface {
	Measure(v pixel.Variant, in pixel.Channels) time.Duration
}

// Clock is the wall-clock Measurer. The input is cloned before the timer
// starts, so each trial sees pristine data and the copy is not timed.
type Clock struct{}

// Measure implements Measurer.
func (Clock) Measure(v pixel.Variant, in pixel.Channels) time.Duration {
	fn := v.Func()
	data := in.Clone()
	start := time.Now()
	out := fn(data)
	elapsed := time.Since(start)
	runtime.KeepAlive(out)
	return elapsed
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(v pixel.Variant, in pixel.Channels) time.Duration

// Measure implements Measurer.
func (f MeasureFunc) Measure(v pixel.Variant, in pixel.Channels) time.Duration {
	return f(v, in)
}

// Options configures a benchmark run.
type Options struct {
	// Warmup is how long each variant runs before sampling starts.
	// Warm-up timings are discarded. Zero disables warm-up.
	Warmup time.Duration

	// Samples is the maximum number of timed trials per variant.
	Samples int

	// MaxTime bounds the sampling time per variant. Sampling stops early
	// once it is spent, after at least MinSamples trials. Zero means no
	// bound.
	MaxTime time.Duration

	// Confidence is the level of the reported confidence interval of the
	// mean, in (0, 1).
	Confidence float64
}

// MinSamples is the fewest trials a variant gets, so a variance exists.
const MinSamples = 2

// DefaultOptions returns the settings used for kind: grayscale takes 100
// samples after 3s of warm-up within 5s, invert takes 1000 samples after 5s
// of warm-up within 10s and reports a 90% interval.
func DefaultOptions(kind pixel.Kind) Options {
	if kind == pixel.KindInvert {
		return Options{
			Warmup:     5 * time.Second,
			Samples:    1000,
			MaxTime:    10 * time.Second,
			Confidence: 0.90,
		}
	}
	return Options{
		Warmup:     3 * time.Second,
		Samples:    100,
		MaxTime:    5 * time.Second,
		Confidence: 0.95,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	switch {
	case o.Warmup < 0:
		return fmt.Errorf("%w: negative warm-up %v", ErrInvalidOptions, o.Warmup)
	case o.Samples < MinSamples:
		return fmt.Errorf("%w: %d samples, need at least %d", ErrInvalidOptions, o.Samples, MinSamples)
	case o.MaxTime < 0:
		return fmt.Errorf("%w: negative max time %v", ErrInvalidOptions, o.MaxTime)
	case o.Confidence <= 0 || o.Confidence >= 1:
		return fmt.Errorf("%w: confidence %v outside (0, 1)", ErrInvalidOptions, o.Confidence)
	}
	return nil
}

// Sample is the duration of one timed trial.
type Sample struct {
	Variant pixel.Variant
	Elapsed time.Duration
}

// Result holds the samples and statistics of one variant.
type Result struct {
	Variant pixel.Variant
	Samples []Sample
	Summary Summary
}

// Report is the outcome of Run.
type Report struct {
	Kind    pixel.Kind
	Pixels  int
	Options Options
	Results []Result
}

// Run benchmarks every variant of kind over in, scalar first. A nil
// Measurer means Clock.
func Run(kind pixel.Kind, in pixel.Channels, opts Options, m Measurer) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", pixel.ErrUnknownKind, kind)
	}
	if m == nil {
		m = Clock{}
	}

	report := &Report{Kind: kind, Pixels: in.Len(), Options: opts}
	for _, v := range pixel.Variants(kind) {
		samples := measure(v, in, opts, m)
		report.Results = append(report.Results, Result{
			Variant: v,
			Samples: samples,
			Summary: Summarize(samples, opts.Confidence),
		})
	}
	return report, nil
}

func measure(v pixel.Variant, in pixel.Channels, opts Options, m Measurer) []Sample {
	if opts.Warmup > 0 {
		start := time.Now()
		for {
			m.Measure(v, in)
			if time.Since(start) >= opts.Warmup {
				break
			}
		}
	}

	samples := make([]Sample, 0, opts.Samples)
	start := time.Now()
	for len(samples) < opts.Samples {
		samples = append(samples, Sample{Variant: v, Elapsed: m.Measure(v, in)})
		if opts.MaxTime > 0 && len(samples) >= MinSamples && time.Since(start) >= opts.MaxTime {
			break
		}
	}
	return samples
}

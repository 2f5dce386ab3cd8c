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
	"math"
	"time"

	"github.com/viterin/vek"
)

// Summary is the statistics of a set of samples. Durations are rounded to
// the nanosecond; Variance is in ns².
type Summary struct {
	N          int
	Mean       time.Duration
	Variance   float64
	StdDev     time.Duration
	Min        time.Duration
	Max        time.Duration
	Confidence float64
	CILow      time.Duration
	CIHigh     time.Duration
}

// Summarize computes the mean, the sample variance (n-1 denominator) and a
// normal-approximation confidence interval of the mean at the given level.
func Summarize(samples []Sample, confidence float64) Summary {
	n := len(samples)
	s := Summary{N: n, Confidence: confidence}
	if n == 0 {
		return s
	}

	ns := make([]float64, n)
	for i, smp := range samples {
		ns[i] = float64(smp.Elapsed.Nanoseconds())
	}

	mean := vek.Mean(ns)
	s.Mean = nanos(mean)
	s.Min = nanos(vek.Min(ns))
	s.Max = nanos(vek.Max(ns))
	if n < 2 {
		s.CILow, s.CIHigh = s.Mean, s.Mean
		return s
	}

	dev := vek.SubNumber(ns, mean)
	s.Variance = vek.Dot(dev, dev) / float64(n-1)
	s.StdDev = nanos(math.Sqrt(s.Variance))

	half := zScore(confidence) * math.Sqrt(s.Variance/float64(n))
	s.CILow = nanos(mean - half)
	s.CIHigh = nanos(mean + half)
	return s
}

// zScore returns the two-sided standard normal quantile for a confidence
// level, e.g. 1.96 for 0.95.
func zScore(confidence float64) float64 {
	return math.Sqrt2 * math.Erfinv(confidence)
}

func nanos(f float64) time.Duration {
	return time.Duration(math.Round(f))
}

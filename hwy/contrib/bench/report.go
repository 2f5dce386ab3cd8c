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
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/ajroetker/go-pixelway/hwy"
	"github.com/ajroetker/go-pixelway/hwy/contrib/pixel"
)

// bytesPerPixel counts the three input channels each call reads.
const bytesPerPixel = 3

// Variants lists the benchmarked variants in run order.
func (r *Report) Variants() []pixel.Variant {
	return lo.Map(r.Results, func(res Result, _ int) pixel.Variant {
		return res.Variant
	})
}

// Fastest returns the result with the lowest mean. It panics on an empty
// report.
func (r *Report) Fastest() Result {
	if len(r.Results) == 0 {
		panic("bench: Fastest of an empty report")
	}
	return lo.MinBy(r.Results, func(a, b Result) bool {
		return a.Summary.Mean < b.Summary.Mean
	})
}

// Result returns the result of v, if it was benchmarked.
func (r *Report) Result(v pixel.Variant) (Result, bool) {
	return lo.Find(r.Results, func(res Result) bool {
		return res.Variant == v
	})
}

// Throughput returns input bytes processed per second at the mean time.
func (r *Report) Throughput(res Result) float64 {
	if res.Summary.Mean <= 0 {
		return 0
	}
	return float64(bytesPerPixel*r.Pixels) / res.Summary.Mean.Seconds()
}

// Speedup returns how many times faster res is than the scalar variant, or
// 0 when no scalar result exists.
func (r *Report) Speedup(res Result) float64 {
	base, ok := r.Result(pixel.Variant{Kind: r.Kind, Width: hwy.Scalar})
	if !ok || res.Summary.Mean <= 0 {
		return 0
	}
	return float64(base.Summary.Mean) / float64(res.Summary.Mean)
}

// Write renders the report as an aligned table.
func (r *Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s: %s pixels, %s input, %.0f%% confidence\n",
		r.Kind, humanize.Comma(int64(r.Pixels)),
		humanize.Bytes(uint64(bytesPerPixel*r.Pixels)), r.Options.Confidence*100); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "variant\tsamples\tmean\tstddev\tmin\tmax\tinterval\tthroughput\tspeedup")
	for _, res := range r.Results {
		s := res.Summary
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%v\t%v\t[%v, %v]\t%s/s\t%.2fx\n",
			res.Variant, s.N, round(s.Mean), round(s.StdDev), round(s.Min), round(s.Max),
			round(s.CILow), round(s.CIHigh),
			humanize.Bytes(uint64(r.Throughput(res))), r.Speedup(res))
	}
	if len(r.Results) > 0 {
		fmt.Fprintf(tw, "fastest: %s\n", r.Fastest().Variant)
	}
	return tw.Flush()
}

// round trims durations to three significant digits for display.
func round(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond)
	case d >= time.Microsecond:
		return d.Round(10 * time.Nanosecond)
	}
	return d
}

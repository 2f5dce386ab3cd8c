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

// Package bench measures the throughput of every variant of a pixel
// transform.
//
// Timing goes through the Measurer interface so the transforms never depend
// on the harness, and tests can substitute a deterministic clock:
//
//	report, err := bench.Run(pixel.KindInvert, ch, bench.DefaultOptions(pixel.KindInvert), bench.Clock{})
//	if err != nil {
//	    return err
//	}
//	report.Write(os.Stdout)
//
// Each variant first runs for a warm-up period whose timings are
// discarded, then collects up to Options.Samples timed trials. Every trial
// works on a fresh clone of the input.
package bench

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

package hwy

import "testing"

func TestScalarMode(t *testing.T) {
	level, width := currentLevel, currentWidth
	t.Cleanup(func() { currentLevel, currentWidth = level, width })

	setScalarMode()
	if CurrentLevel() != DispatchScalar || CurrentName() != "scalar" {
		t.Errorf("level = %v, want scalar", CurrentLevel())
	}
	if CurrentWidth() != 0 {
		t.Errorf("CurrentWidth() = %d, want 0 without a SIMD unit", CurrentWidth())
	}
	if got := PreferredWidth(); got != Scalar {
		t.Errorf("PreferredWidth() = %v, want scalar", got)
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

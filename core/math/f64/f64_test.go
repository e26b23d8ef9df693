// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package f64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CSRedRat/vogl/core/math/f64"
)

func TestMinOf(t *testing.T) {
	assert.Equal(t, 1.0, f64.MinOf(1))
	assert.Equal(t, -2.0, f64.MinOf(1, 3, -2, 0))
	assert.Equal(t, 0.5, f64.MinOf(0.5, 0.75))
}

func TestMaxOf(t *testing.T) {
	assert.Equal(t, 1.0, f64.MaxOf(1))
	assert.Equal(t, 3.0, f64.MaxOf(1, 3, -2, 0))
	assert.Equal(t, 0.75, f64.MaxOf(0.5, 0.75))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, f64.Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, f64.Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, f64.Clamp(1.5, 0, 1))
	assert.Equal(t, -1.0, f64.Clamp(-1.0078, -1, 1))
	assert.Equal(t, -1.0, f64.Clamp(-1, -1, 1))
}

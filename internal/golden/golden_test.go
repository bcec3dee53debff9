// Copyright 2020-2025 Buf Technologies, Inc.
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

package golden

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	var config struct {
		Intern bool   `yaml:"intern"`
		Max    int    `yaml:"max_diagnostics"`
		Note   string `yaml:"note"`
	}
	text, err := ParseConfig("//% intern: true\nlet a = 1;\n//% max_diagnostics: 3\na\n", &config)
	require.NoError(t, err)
	assert.Equal(t, "let a = 1;\na\n", text)
	assert.True(t, config.Intern)
	assert.Equal(t, 3, config.Max)
	assert.Empty(t, config.Note)

	text, err = ParseConfig("1 + 2\n", &config)
	require.NoError(t, err)
	assert.Equal(t, "1 + 2\n", text)

	_, err = ParseConfig("//% intern: [\n", &config)
	assert.Error(t, err)
}

func TestDiff(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Diff("a\nb\n", "a\nb\n"))

	diff := Diff("a\nc\n", "a\nb\n")
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+c")
	assert.Contains(t, diff, "--- want")
}

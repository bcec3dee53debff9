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
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPrefix starts a line of test case configuration.
const ConfigPrefix = "//% "

// ParseConfig gathers every line of text that starts with [ConfigPrefix],
// decodes them as one YAML document into config, and returns text with those
// lines removed.
func ParseConfig(text string, config any) (string, error) {
	var yml bytes.Buffer
	var rest strings.Builder
	for line := range strings.Lines(text) {
		if line, ok := strings.CutPrefix(line, ConfigPrefix); ok {
			yml.WriteString(line)
			continue
		}
		rest.WriteString(line)
	}

	if yml.Len() == 0 {
		return text, nil
	}
	return rest.String(), yaml.Unmarshal(yml.Bytes(), config)
}

// Copyright 2025 Poiesic Systems
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


// Package config holds the tunable parameters of the search engine: field
// weights, fuzzy matching thresholds, the ranking score floor, the query
// debounce interval, and the index build pool size.
//
// All values have working defaults; Load reads overrides from a YAML file.
// The numeric constants are tuning knobs, not compatibility requirements.
package config

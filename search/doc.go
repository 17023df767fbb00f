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


// Package search scores catalog records against a tokenized query.
//
// The Ranker combines three match tiers per query token:
//   - exact token equality
//   - prefix matching, the dominant case for instant-as-you-type search
//   - bounded Damerau-Levenshtein distance for typo tolerance
//
// Per-field similarity is multiplied by the field's static weight and
// summed across query tokens, so partial matches stay visible while records
// matching more of the query naturally rank higher. Category faceting is
// applied to the ranked list without disturbing relative order.
package search

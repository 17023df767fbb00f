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


// Package query owns live query state for an interactive search session.
//
// The Controller debounces keystrokes, runs the ranking pipeline, and fans
// settled results out to subscribers. A generation
// counter is the cancellation token: every input bumps it, and any
// computation whose captured generation is stale by completion is dropped
// silently, so the published result always answers the most recent input.
// Category toggles are discrete actions and skip the debounce.
package query

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


// Package index turns a catalog into an in-memory inverted index.
//
// Tokenize normalizes text into comparable word units; Build maps each
// token to the records and fields it occurs in, with a static per-field
// weight. The index is a pure function of the catalog: building twice from
// the same catalog yields the same postings, and the built value is
// read-only for the rest of the session.
package index

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


// Package store defines catalog persistence for the CLI tools: an imported
// catalog can be kept between invocations instead of re-parsing the source
// JSON every time.
//
// Only raw ContentRecords are stored, in curated order. The search index is
// never persisted; it is rebuilt from the loaded catalog on every session.
package store

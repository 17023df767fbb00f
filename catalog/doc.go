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


// Package catalog defines the content record model and the immutable
// catalog value the search engine is built over.
//
// A Catalog is constructed once from the site's full record list and
// validated at that point: duplicate slugs and malformed records are
// construction errors, never silently repaired. Curated record order and
// first-appearance category order are preserved for browsing.
package catalog

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


package catalog

import "errors"

// Catalog integrity errors. All of them are fatal at load time: a catalog
// that fails validation is a content-authoring bug, not a runtime condition.
var (
	// ErrInvalidRecord indicates a ContentRecord failed validation.
	ErrInvalidRecord = errors.New("invalid content record")

	// ErrEmptySlug indicates the Slug field is empty.
	ErrEmptySlug = errors.New("slug cannot be empty")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyCategory indicates the Category field is empty.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrReservedCategory indicates a record uses the "all" facet label.
	ErrReservedCategory = errors.New(`category "all" is reserved`)

	// ErrDuplicateSlug indicates two records share a slug.
	ErrDuplicateSlug = errors.New("duplicate slug")
)

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

import "fmt"

// ValidateContentRecord validates a ContentRecord according to domain rules.
//
// Validation rules:
//   - Slug must not be empty (it is the record's identity)
//   - Title must not be empty (it is the primary indexed field)
//   - Category must not be empty and must not be the reserved "all" label
//
// NOT validated:
//   - Description and Keywords (legitimately empty for some pages)
//   - Image and Icon (presentation-only, opaque here)
func ValidateContentRecord(record *ContentRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Slug == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptySlug)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w (slug %q)", ErrInvalidRecord, ErrEmptyTitle, record.Slug)
	}

	if record.Category == "" {
		return fmt.Errorf("%w: %w (slug %q)", ErrInvalidRecord, ErrEmptyCategory, record.Slug)
	}

	if record.Category == CategoryAll {
		return fmt.Errorf("%w: %w (slug %q)", ErrInvalidRecord, ErrReservedCategory, record.Slug)
	}

	return nil
}

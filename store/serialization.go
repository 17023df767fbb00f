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


package store

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"

	"github.com/poiesic/guidesearch/catalog"
)

// ContentRecordMUS serializes ContentRecords in the MUS format.
// Fields are written in declaration order; the serializer is small enough
// to maintain by hand.
var ContentRecordMUS = contentRecordSer{}

var keywordsSer = ord.NewSliceSer[string](ord.String)

type contentRecordSer struct{}

var _ mus.Serializer[catalog.ContentRecord] = contentRecordSer{}

func (contentRecordSer) Marshal(r catalog.ContentRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.Slug, bs)
	n += ord.String.Marshal(r.Title, bs[n:])
	n += ord.String.Marshal(r.Description, bs[n:])
	n += ord.String.Marshal(string(r.Category), bs[n:])
	n += keywordsSer.Marshal(r.Keywords, bs[n:])
	n += ord.String.Marshal(r.Image, bs[n:])
	n += ord.String.Marshal(r.Icon, bs[n:])
	return
}

func (contentRecordSer) Unmarshal(bs []byte) (r catalog.ContentRecord, n int, err error) {
	var n1 int
	r.Slug, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var category string
	category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Category = catalog.Category(category)
	r.Keywords, n1, err = keywordsSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Image, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	r.Icon, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (contentRecordSer) Size(r catalog.ContentRecord) (size int) {
	size = ord.String.Size(r.Slug)
	size += ord.String.Size(r.Title)
	size += ord.String.Size(r.Description)
	size += ord.String.Size(string(r.Category))
	size += keywordsSer.Size(r.Keywords)
	size += ord.String.Size(r.Image)
	size += ord.String.Size(r.Icon)
	return
}

func (contentRecordSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 4; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = keywordsSer.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

// MarshalContentRecord serializes a ContentRecord to bytes.
func MarshalContentRecord(r *catalog.ContentRecord) []byte {
	buf := make([]byte, ContentRecordMUS.Size(*r))
	ContentRecordMUS.Marshal(*r, buf)
	return buf
}

// UnmarshalContentRecord deserializes a ContentRecord from bytes.
func UnmarshalContentRecord(data []byte) (*catalog.ContentRecord, error) {
	record, _, err := ContentRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

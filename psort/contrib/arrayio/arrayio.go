// Copyright 2025 go-parsort Authors
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

// Package arrayio persists numeric arrays as MessagePack documents.
//
// A document is a map with exactly one key, "array", whose value is the
// array of elements:
//
//	{"array": [3, -1, 2]}
//
// Integer element types accept only MessagePack integers that fit the type.
// Floating-point element types accept floats and integers.
package arrayio

import (
	"bufio"
	"io"
	"os"
	"reflect"

	"github.com/dustin/go-humanize"
	"github.com/gravitational/trace"
	"github.com/parsort/go-parsort/psort"
	"github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
)

// FieldName is the only key of a stored document.
const FieldName = "array"

// bufferSize is the size of the read and write buffers wrapped around files.
const bufferSize = 1 << 20

var log = logrus.WithField(trace.Component, "arrayio")

// handle is safe for concurrent use once configured.
var handle = newHandle()

func newHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{WriteExt: true}
	h.RawToString = true
	return h
}

// Store writes seq to the file at path, creating or truncating it.
func Store[T psort.Number](path string, seq []T) error {
	f, err := os.Create(path)
	if err != nil {
		return trace.ConvertSystemError(err)
	}

	w := bufio.NewWriterSize(f, bufferSize)
	if err := Encode(w, seq); err != nil {
		f.Close()
		return trace.Wrap(err, "failed to encode %v", path)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return trace.ConvertSystemError(err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return trace.ConvertSystemError(err)
	}
	if err := f.Close(); err != nil {
		return trace.ConvertSystemError(err)
	}

	log.WithFields(logrus.Fields{
		"path":     path,
		"elements": len(seq),
		"size":     humanize.Bytes(uint64(fi.Size())),
	}).Debug("Stored array.")
	return nil
}

// Load reads the array stored at path.
func Load[T psort.Number](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	defer f.Close()

	seq, err := Decode[T](bufio.NewReaderSize(f, bufferSize))
	if err != nil {
		return nil, trace.Wrap(err, "failed to load %v", path)
	}

	log.WithFields(logrus.Fields{
		"path":     path,
		"elements": len(seq),
	}).Debug("Loaded array.")
	return seq, nil
}

// Encode writes seq to w as a single document.
func Encode[T psort.Number](w io.Writer, seq []T) error {
	if err := codec.NewEncoder(w, handle).Encode(envelope(seq)); err != nil {
		return trace.ConvertSystemError(err)
	}
	return nil
}

// Decode reads a single document from r.
func Decode[T psort.Number](r io.Reader) ([]T, error) {
	var doc any
	if err := codec.NewDecoder(r, handle).Decode(&doc); err != nil {
		return nil, trace.BadParameter("malformed document: %v", err)
	}

	items, err := unwrap(doc)
	if err != nil {
		return nil, trace.Wrap(err)
	}

	seq := make([]T, len(items))
	for i, item := range items {
		v, err := convert[T](item)
		if err != nil {
			return nil, trace.BadParameter("element %d: %v", i, err)
		}
		seq[i] = v
	}
	return seq, nil
}

// envelope wraps seq into the document layout.
func envelope[T psort.Number](seq []T) map[string]any {
	if reflect.TypeFor[T]().Kind() == reflect.Uint8 {
		// A []uint8 would be written as a MessagePack bin blob.
		wide := make([]uint16, len(seq))
		for i, v := range seq {
			wide[i] = uint16(v)
		}
		return map[string]any{FieldName: wide}
	}
	if seq == nil {
		// A nil slice would be written as nil instead of an empty array.
		seq = []T{}
	}
	return map[string]any{FieldName: seq}
}

// unwrap validates the document layout and returns its raw elements.
func unwrap(doc any) ([]any, error) {
	var (
		val   any
		found bool
		keys  int
	)
	switch m := doc.(type) {
	case map[any]any:
		keys = len(m)
		val, found = m[FieldName]
	case map[string]any:
		keys = len(m)
		val, found = m[FieldName]
	default:
		return nil, trace.BadParameter("expected a map with the single key %q, got %T", FieldName, doc)
	}

	if keys != 1 {
		return nil, trace.BadParameter("expected a map with the single key %q, got %d keys", FieldName, keys)
	}
	if !found {
		return nil, trace.BadParameter("expected the key %q", FieldName)
	}
	items, ok := val.([]any)
	if !ok {
		return nil, trace.BadParameter("expected %q to hold an array, got %T", FieldName, val)
	}
	return items, nil
}

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

package arrayio

import (
	"bytes"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/gravitational/trace"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/ugorji/go/codec"
)

func TestStoreLoadInt(t *testing.T) {
	original := lo.Times(1000, func(int) int32 { return rand.Int31n(201) - 100 })
	path := filepath.Join(t.TempDir(), "ints.msgpack")

	require.NoError(t, Store(path, original))
	loaded, err := Load[int32](path)
	require.NoError(t, err)
	require.Equal(t, original, loaded)
}

func TestStoreLoadFloat(t *testing.T) {
	original := lo.Times(1000, func(int) float32 { return rand.Float32()*200 - 100 })
	path := filepath.Join(t.TempDir(), "floats.msgpack")

	require.NoError(t, Store(path, original))
	loaded, err := Load[float32](path)
	require.NoError(t, err)
	require.Equal(t, original, loaded)
}

func TestStoreLoadExtremes(t *testing.T) {
	dir := t.TempDir()

	ints := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}
	require.NoError(t, Store(filepath.Join(dir, "i64"), ints))
	gotInts, err := Load[int64](filepath.Join(dir, "i64"))
	require.NoError(t, err)
	require.Equal(t, ints, gotInts)

	uints := []uint64{0, 1, math.MaxUint64}
	require.NoError(t, Store(filepath.Join(dir, "u64"), uints))
	gotUints, err := Load[uint64](filepath.Join(dir, "u64"))
	require.NoError(t, err)
	require.Equal(t, uints, gotUints)

	bytesSeq := []uint8{0, 7, 255}
	require.NoError(t, Store(filepath.Join(dir, "u8"), bytesSeq))
	gotBytes, err := Load[uint8](filepath.Join(dir, "u8"))
	require.NoError(t, err)
	require.Equal(t, bytesSeq, gotBytes)

	floats := []float64{-math.MaxFloat64, -0.5, 0, math.SmallestNonzeroFloat64, math.MaxFloat64}
	require.NoError(t, Store(filepath.Join(dir, "f64"), floats))
	gotFloats, err := Load[float64](filepath.Join(dir, "f64"))
	require.NoError(t, err)
	require.Equal(t, floats, gotFloats)
}

func TestStoreLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, Store[int](path, nil))

	loaded, err := Load[int](path)
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestLoadIntegersAsFloats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []int64{-3, 0, 12}))

	got, err := Decode[float64](&buf)
	require.NoError(t, err)
	require.Equal(t, []float64{-3, 0, 12}, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[int](filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.True(t, trace.IsNotFound(err), "got %T: %v", err, err)
}

func TestStoreUncreatable(t *testing.T) {
	err := Store(filepath.Join(t.TempDir(), "no", "such", "dir", "out"), []int{1})
	require.Error(t, err)
	require.True(t, trace.IsNotFound(err), "got %T: %v", err, err)
}

// encodeRaw writes an arbitrary value with the same handle Store uses.
func encodeRaw(t *testing.T, v any) *bytes.Buffer {
	var buf bytes.Buffer
	require.NoError(t, codec.NewEncoder(&buf, handle).Encode(v))
	return &buf
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  any
	}{
		{"not a map", []int{1, 2, 3}},
		{"two keys", map[string]any{"array": []int{1}, "extra": 1}},
		{"no keys", map[string]any{}},
		{"wrong key", map[string]any{"values": []int{1}}},
		{"value not an array", map[string]any{"array": "1,2,3"}},
		{"nil value", map[string]any{"array": nil}},
		{"string element", map[string]any{"array": []any{1, "two", 3}}},
		{"float element for int", map[string]any{"array": []any{1, 2.5}}},
		{"overflow", map[string]any{"array": []any{1, 1 << 40}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[int32](encodeRaw(t, tt.doc))
			require.Error(t, err)
			require.True(t, trace.IsBadParameter(err), "got %T: %v", err, err)
		})
	}
}

func TestDecodeNegativeIntoUnsigned(t *testing.T) {
	_, err := Decode[uint64](encodeRaw(t, map[string]any{"array": []any{5, -1}}))
	require.Error(t, err)
	require.True(t, trace.IsBadParameter(err))
	require.Contains(t, err.Error(), "element 1")
}

func TestLoadGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load[int](path)
	require.Error(t, err)
	require.True(t, trace.IsBadParameter(err), "got %T: %v", err, err)
}

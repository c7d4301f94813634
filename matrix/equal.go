// SPDX-License-Identifier: MIT
// Package matrix: NA-aware structural equality and hashing.
//
// Purpose:
//   - Define one notion of matrix equality across all element kinds: equal
//     shape, and per position either both elements missing or both present
//     and equal. Kind does not participate directly — a boxed matrix of
//     int32 values equals the specialized int32 matrix with the same cells,
//     and all-NA matrices of any kinds compare equal shape-for-shape.
//   - Provide the matching content hash: Equal(a, b) implies
//     a.Hash() == b.Hash(). The converse does not hold (hashes collide).
//
// Behavior highlights:
//   - Same-kind comparisons take a typed fast path (no boxing); mixed-kind
//     comparisons box per element and compare dynamic values, so int32(5)
//     and int64(5) are NOT equal, matching boxed-value semantics.
//   - Every missing element hashes to one fixed constant, so the hash of an
//     all-NA matrix depends only on its shape.
//   - float64 negative zero: -0.0 == 0.0 under Go (and IEEE) equality, so
//     the hash canonicalizes -0 to +0 before taking bits.
//
// Determinism:
//   - Row-major scan with early exit on the first difference; Hash is a
//     pure function of shape and contents.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).

package matrix

import (
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
)

const (
	hashSeed  uint64 = 1
	hashPrime uint64 = 31

	// naHash is the single hash contribution of every missing element,
	// regardless of kind. 0x4e41 is "NA" in ASCII.
	naHash uint64 = 0x4e41
)

// Equal reports whether a and b have the same shape and NA-aware equal
// contents. Two nils are equal; nil never equals a matrix.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Same-kind fast paths: compare typed elements without boxing.
	switch av := a.(type) {
	case *Dense[bool]:
		if bv, ok := b.(*Dense[bool]); ok {
			return equalSameKind(av, bv)
		}
	case *Dense[int32]:
		if bv, ok := b.(*Dense[int32]); ok {
			return equalSameKind(av, bv)
		}
	case *Dense[int64]:
		if bv, ok := b.(*Dense[int64]); ok {
			return equalSameKind(av, bv)
		}
	case *Dense[float64]:
		if bv, ok := b.(*Dense[float64]); ok {
			return equalSameKind(av, bv)
		}
	}

	// Kind-erased path: missingness first, then boxed value comparison.
	n := a.Len()
	for i := 0; i < n; i++ {
		aNA, bNA := a.missingAt(i), b.missingAt(i)
		if aNA != bNA {
			return false
		}
		if aNA {
			continue
		}
		if !rawEqual(a.boxedRaw(i), b.boxedRaw(i)) {
			return false
		}
	}

	return true
}

// Equal reports whether m and other are NA-aware equal; see the package
// level Equal.
func (m *Dense[E]) Equal(other Matrix) bool { return Equal(m, other) }

// equalSameKind compares two matrices of one element kind elementwise.
// Missing sentinels are matched first, so float64 NaN (the sentinel)
// compares equal to NaN despite NaN != NaN.
func equalSameKind[E comparable](a, b *Dense[E]) bool {
	for i := range a.data {
		aNA := a.desc.IsMissing(a.data[i])
		if aNA != b.desc.IsMissing(b.data[i]) {
			return false
		}
		if aNA {
			continue
		}
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// rawEqual compares two boxed present values. Distinct dynamic types never
// compare equal; identical uncomparable dynamic types (slices, maps) fall
// back to deep equality instead of panicking on ==.
func rawEqual(v, w any) bool {
	vt := reflect.TypeOf(v)
	if vt != reflect.TypeOf(w) {
		return false
	}
	if vt.Comparable() {
		return v == w
	}

	return reflect.DeepEqual(v, w)
}

// Hash returns the NA-aware content hash: seed 1, then for every element
// in row-major order h = h*31 + elemHash. Missing elements contribute
// naHash, present ones hash their value. Equal matrices hash equally.
func (m *Dense[E]) Hash() uint64 {
	h := hashSeed
	for i := range m.data {
		eh := naHash
		if !m.desc.IsMissing(m.data[i]) {
			eh = valueHash(m.data[i])
		}
		h = h*hashPrime + eh
	}

	return h
}

// valueHash maps one present element to its hash. The primitive kinds use
// their bit patterns (with -0.0 folded into +0.0 so equal floats hash
// equally); other boxed types hash their verbose Go representation.
func valueHash(v any) uint64 {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	case float64:
		if x == 0 {
			x = 0 // collapse -0.0: it equals +0.0 but has different bits
		}
		return math.Float64bits(x)
	default:
		h := fnv.New64a()
		fmt.Fprintf(h, "%#v", x)
		return h.Sum64()
	}
}

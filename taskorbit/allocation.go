package taskorbit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cgtl/mpsym/perm"
)

// TaskAllocation is a sequence of processing-element identifiers, offset
// by a fixed shift: an entry v represents point (v - offset) in the acting
// group's domain when v > offset, and is left fixed by every permutation
// otherwise (e.g. a sentinel for "unassigned").
type TaskAllocation struct {
	values []uint
	offset uint
}

// NewTaskAllocation builds an allocation from values with the given
// offset, copying values so the caller's slice can be reused.
func NewTaskAllocation(values []uint, offset uint) TaskAllocation {
	cp := make([]uint, len(values))
	copy(cp, values)
	return TaskAllocation{values: cp, offset: offset}
}

// Values returns a copy of the allocation's entries.
func (a TaskAllocation) Values() []uint {
	out := make([]uint, len(a.values))
	copy(out, a.values)
	return out
}

// Offset returns the allocation's offset.
func (a TaskAllocation) Offset() uint { return a.offset }

// Len returns the number of entries.
func (a TaskAllocation) Len() int { return len(a.values) }

// Permuted returns a new allocation with sigma applied to every entry
// greater than Offset(): entry v becomes sigma.At(v-offset)+offset.
// Entries <= offset pass through unchanged. Returns ErrDomainError if some
// shifted entry falls outside sigma's degree.
func (a TaskAllocation) Permuted(sigma perm.Permutation) (TaskAllocation, error) {
	out := make([]uint, len(a.values))
	for i, v := range a.values {
		if v <= a.offset {
			out[i] = v
			continue
		}
		img, err := sigma.At(v - a.offset)
		if err != nil {
			return TaskAllocation{}, fmt.Errorf("%w: %w", ErrDomainError, err)
		}
		out[i] = img + a.offset
	}
	return TaskAllocation{values: out, offset: a.offset}, nil
}

// PermuteInPlace applies sigma to a's entries in place, following the same
// rule as Permuted.
func (a *TaskAllocation) PermuteInPlace(sigma perm.Permutation) error {
	for i, v := range a.values {
		if v <= a.offset {
			continue
		}
		img, err := sigma.At(v - a.offset)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDomainError, err)
		}
		a.values[i] = img + a.offset
	}
	return nil
}

// Equal reports whether a and other have the same offset and entries.
func (a TaskAllocation) Equal(other TaskAllocation) bool {
	if a.offset != other.offset || len(a.values) != len(other.values) {
		return false
	}
	for i := range a.values {
		if a.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// Compare returns -1, 0, or 1 as a's entries are lexicographically less
// than, equal to, or greater than other's. Offset is not compared (two
// allocations with different offsets but equal entries compare equal).
func (a TaskAllocation) Compare(other TaskAllocation) int {
	n := len(a.values)
	if len(other.values) < n {
		n = len(other.values)
	}
	for i := 0; i < n; i++ {
		if a.values[i] != other.values[i] {
			if a.values[i] < other.values[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.values) < len(other.values):
		return -1
	case len(a.values) > len(other.values):
		return 1
	default:
		return 0
	}
}

// Less reports whether a sorts strictly before other.
func (a TaskAllocation) Less(other TaskAllocation) bool { return a.Compare(other) < 0 }

// key is a’s canonical hash/dedup key, used by OrbitBFS's visited set and
// usable anywhere TaskAllocation needs to live in a plain Go map (its
// slice field keeps it non-comparable as a map key directly).
func (a TaskAllocation) key() string {
	var sb strings.Builder
	sb.Grow(len(a.values) * 4)
	for i, v := range a.values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return sb.String()
}

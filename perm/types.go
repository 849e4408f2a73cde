package perm

import (
	"fmt"
	"strings"
)

// Permutation is an immutable bijection on the point set [1, Degree()],
// stored as a 1-based image vector: Image()[p-1] is the image of point p.
//
// Zero value is not valid; construct via New or Identity.
type Permutation struct {
	degree uint
	image  []uint // 0-indexed slice; image[p-1] == value of permutation at point p
}

// New builds a Permutation from a 1-based image vector: image[i] is the
// value at point i+1. Returns ErrEmptyImage for a zero-length image, or
// ErrNotAPermutation if image is not a bijection on [1, len(image)].
func New(image []uint) (Permutation, error) {
	if len(image) == 0 {
		return Permutation{}, ErrEmptyImage
	}

	degree := uint(len(image))
	seen := make([]bool, degree+1)
	for _, v := range image {
		if v < 1 || v > degree || seen[v] {
			return Permutation{}, fmt.Errorf("%w: %v", ErrNotAPermutation, image)
		}
		seen[v] = true
	}

	cp := make([]uint, degree)
	copy(cp, image)
	return Permutation{degree: degree, image: cp}, nil
}

// Identity returns the identity permutation of the given degree.
func Identity(degree uint) Permutation {
	image := make([]uint, degree)
	for i := range image {
		image[i] = uint(i + 1)
	}
	return Permutation{degree: degree, image: image}
}

// NewTransposition returns the permutation of the given degree swapping a
// and b and fixing every other point.
func NewTransposition(degree, a, b uint) (Permutation, error) {
	return NewCycle(degree, []uint{a, b})
}

// NewCycle returns the permutation of the given degree that cyclically
// permutes the listed points (in the order given) and fixes every other
// point.
func NewCycle(degree uint, cycle []uint) (Permutation, error) {
	p := Identity(degree)
	if len(cycle) < 2 {
		return p, nil
	}

	for _, pt := range cycle {
		if pt < 1 || pt > degree {
			return Permutation{}, fmt.Errorf("%w: point %d", ErrDomainError, pt)
		}
	}

	image := make([]uint, degree)
	copy(image, p.image)
	for i, pt := range cycle {
		next := cycle[(i+1)%len(cycle)]
		image[pt-1] = next
	}

	return Permutation{degree: degree, image: image}, nil
}

// Degree returns the size of the underlying point set.
func (p Permutation) Degree() uint { return p.degree }

// Image returns a copy of the 1-based image vector.
func (p Permutation) Image() []uint {
	out := make([]uint, len(p.image))
	copy(out, p.image)
	return out
}

// At returns the image of point under p. Returns ErrDomainError if point is
// outside [1, Degree()].
func (p Permutation) At(point uint) (uint, error) {
	if point < 1 || point > p.degree {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrDomainError, point, p.degree)
	}
	return p.image[point-1], nil
}

// IsIdentity reports whether p fixes every point.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.image {
		if v != uint(i+1) {
			return false
		}
	}
	return true
}

// Equal reports whether p and other have the same degree and image.
func (p Permutation) Equal(other Permutation) bool {
	if p.degree != other.degree {
		return false
	}
	for i := range p.image {
		if p.image[i] != other.image[i] {
			return false
		}
	}
	return true
}

// Compose returns a*b, the permutation x -> a(b(x)).
// Returns ErrDegreeMismatch if a and b have different degree.
func Compose(a, b Permutation) (Permutation, error) {
	if a.degree != b.degree {
		return Permutation{}, fmt.Errorf("%w: %d vs %d", ErrDegreeMismatch, a.degree, b.degree)
	}

	image := make([]uint, a.degree)
	for x := uint(1); x <= a.degree; x++ {
		image[x-1] = a.image[b.image[x-1]-1]
	}
	return Permutation{degree: a.degree, image: image}, nil
}

// Mul is a convenience wrapper over Compose that panics on degree mismatch.
// It exists so call sites that have already established a common degree
// (e.g. inside a single BSGS level) can write p.Mul(q) fluently.
func (p Permutation) Mul(q Permutation) Permutation {
	r, err := Compose(p, q)
	if err != nil {
		panic(err)
	}
	return r
}

// Inverse returns the inverse permutation.
func (p Permutation) Inverse() Permutation {
	image := make([]uint, p.degree)
	for x := uint(1); x <= p.degree; x++ {
		image[p.image[x-1]-1] = x
	}
	return Permutation{degree: p.degree, image: image}
}

// Stabilizes reports whether p fixes every point in points.
func (p Permutation) Stabilizes(points []uint) bool {
	for _, pt := range points {
		if pt < 1 || pt > p.degree {
			continue
		}
		if p.image[pt-1] != pt {
			return false
		}
	}
	return true
}

// Cycles decomposes p into its disjoint cycles, including fixed points as
// length-1 cycles, in order of smallest representative.
func (p Permutation) Cycles() [][]uint {
	visited := make([]bool, p.degree+1)
	var cycles [][]uint

	for start := uint(1); start <= p.degree; start++ {
		if visited[start] {
			continue
		}
		var cycle []uint
		for cur := start; !visited[cur]; cur = p.image[cur-1] {
			visited[cur] = true
			cycle = append(cycle, cur)
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// Sign returns +1 for an even permutation and -1 for an odd permutation.
func (p Permutation) Sign() int {
	sign := 1
	for _, cycle := range p.Cycles() {
		if len(cycle)%2 == 0 {
			sign = -sign
		}
	}
	return sign
}

// IsOdd reports whether p has negative sign.
func (p Permutation) IsOdd() bool { return p.Sign() < 0 }

// String renders p in cycle notation, e.g. "(1 2 3)(4 5)". The identity
// renders as "()".
func (p Permutation) String() string {
	var parts []string
	for _, cycle := range p.Cycles() {
		if len(cycle) < 2 {
			continue
		}
		strs := make([]string, len(cycle))
		for i, pt := range cycle {
			strs[i] = fmt.Sprintf("%d", pt)
		}
		parts = append(parts, "("+strings.Join(strs, " ")+")")
	}
	if len(parts) == 0 {
		return "()"
	}
	return strings.Join(parts, "")
}

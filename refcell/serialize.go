package refcell

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidKindTag reports a persisted integer outside the nine valid kind
// tags. Callers deserializing mesh files can errors.Is against it to decide
// whether to abort the load.
var ErrInvalidKindTag = errors.New("persisted cell kind tag is not valid")

// Write serializes the kind to the stream as a plain decimal integer
func (k Kind) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d", uint8(k)); err != nil {
		return fmt.Errorf("writing cell kind: %w", err)
	}
	return nil
}

// ReadKind reads a decimal integer from the stream and validates it against
// the nine enumerated tags (eight concrete kinds plus Invalid)
func ReadKind(r io.Reader) (Kind, error) {
	var value int
	if _, err := fmt.Fscanf(r, "%d", &value); err != nil {
		return Invalid, fmt.Errorf("reading cell kind: %w", err)
	}
	k := Kind(value)
	switch k {
	case Vertex, Line, Triangle, Quadrilateral, Tetrahedron,
		Pyramid, Wedge, Hexahedron, Invalid:
		if value == int(uint8(k)) { // reject values truncated by the cast
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %d", ErrInvalidKindTag, value)
}

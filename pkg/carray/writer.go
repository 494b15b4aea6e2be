package carray

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"img2carray/pkg/pixel"
)

var (
	ErrEmptyImage    = errors.New("image has no pixels")
	ErrBadIdentifier = errors.New("array name is not a valid C identifier")
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		elemType: "unsigned short int",
		comment:  "// Auto generated image header file",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Writer renders a pixel matrix as a C array declaration. Array names are
// checked against C identifier syntax before rendering; reserved words
// are not, that stays with the caller.
type Writer struct {
	elemType string
	comment  string
}

// Render emits the array declaration with one decimal value per line in
// matrix scan order, tab indented, comma separated with no trailing
// comma. An empty matrix is rejected rather than rendered as {}.
func (w *Writer) Render(m pixel.Matrix, name string) ([]byte, error) {
	if m.Len() == 0 {
		return nil, ErrEmptyImage
	}

	if !identifier.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrBadIdentifier, name)
	}

	var buf bytes.Buffer
	buf.WriteString(w.comment)
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "%s %s [] = {\n", w.elemType, name)

	values := m.Values()
	for i, v := range values {
		buf.WriteByte('\t')
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
		if i < len(values)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("};\n")
	return buf.Bytes(), nil
}

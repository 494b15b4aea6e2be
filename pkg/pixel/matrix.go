package pixel

import "image"

// FromImage packs every pixel of src into a Matrix, scanning rows top to
// bottom and each row left to right. The matrix keeps the source scan
// order exactly, no flipping or rotation.
func FromImage(src image.Image) Matrix {
	bounds := src.Bounds()

	m := Matrix{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		values: make([]uint16, 0, bounds.Dx()*bounds.Dy()),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			m.values = append(m.values, Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}

	return m
}

// Matrix is a row-major grid of packed RGB565 values.
type Matrix struct {
	width  int
	height int
	values []uint16
}

func (m Matrix) Width() int {
	return m.width
}

func (m Matrix) Height() int {
	return m.height
}

// Len is the total pixel count, always width times height.
func (m Matrix) Len() int {
	return len(m.values)
}

// At returns the packed value at the given row and column.
func (m Matrix) At(row, col int) uint16 {
	return m.values[row*m.width+col]
}

// Values returns the flat row-major backing slice.
func (m Matrix) Values() []uint16 {
	return m.values
}

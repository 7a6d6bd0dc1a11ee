package hal

import "image/color"

// Matrix owns the pixel buffer of the LED matrix. Set/Clear only touch the
// buffer; Flush streams the whole buffer to the chain.
type Matrix struct {
	w   PixelWriter
	buf []color.RGBA
}

func NewMatrix(w PixelWriter, pixels int) *Matrix {
	if pixels <= 0 {
		pixels = 25
	}
	return &Matrix{w: w, buf: make([]color.RGBA, pixels)}
}

func (m *Matrix) Len() int { return len(m.buf) }

// Set ignores indices outside the matrix.
func (m *Matrix) Set(index int, c color.RGBA) {
	if index < 0 || index >= len(m.buf) {
		return
	}
	m.buf[index] = c
}

func (m *Matrix) Pixel(index int) color.RGBA {
	if index < 0 || index >= len(m.buf) {
		return color.RGBA{}
	}
	return m.buf[index]
}

func (m *Matrix) Clear() {
	for i := range m.buf {
		m.buf[i] = color.RGBA{}
	}
}

func (m *Matrix) Flush() error { return m.w.WriteColors(m.buf) }

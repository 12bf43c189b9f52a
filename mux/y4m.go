package mux

import (
	"fmt"
	"io"

	"github.com/xuguangxin/rav1e"
	"github.com/xuguangxin/rav1e/pixel"
)

// Y4mWriter emits raw frames in the YUV4MPEG2 stream format. It is used
// for reconstructed frame output, where the pixels themselves are the
// payload.
type Y4mWriter struct {
	w        io.Writer
	bitDepth int
}

func y4mColorTag(cs rav1e.ChromaSampling, bitDepth int) string {
	base := map[rav1e.ChromaSampling]string{
		rav1e.Cs420: "420",
		rav1e.Cs422: "422",
		rav1e.Cs444: "444",
	}[cs]
	if bitDepth > 8 {
		return fmt.Sprintf("%sp%d", base, bitDepth)
	}
	if cs == rav1e.Cs420 {
		return "420jpeg"
	}
	return base
}

// NewY4mWriter writes the stream header and returns a writer for the
// frames that follow.
func NewY4mWriter(
	w io.Writer, width, height int, fpsNum, fpsDen uint32,
	cs rav1e.ChromaSampling, bitDepth int,
) (*Y4mWriter, error) {
	_, err := fmt.Fprintf(w, "YUV4MPEG2 W%d H%d F%d:%d Ip A0:0 C%s\n",
		width, height, fpsNum, fpsDen, y4mColorTag(cs, bitDepth))
	if err != nil {
		return nil, fmt.Errorf("mux: write y4m header: %w", err)
	}
	return &Y4mWriter{w: w, bitDepth: bitDepth}, nil
}

// WriteY4mFrame writes one frame marker followed by the three planes.
// Samples wider than 8 bits go out little-endian, two bytes each.
func WriteY4mFrame[T pixel.Sample](y *Y4mWriter, f *rav1e.Frame[T]) error {
	if _, err := io.WriteString(y.w, "FRAME\n"); err != nil {
		return fmt.Errorf("mux: write y4m frame marker: %w", err)
	}
	for _, p := range f.Planes {
		if err := writePlane(y.w, p, y.bitDepth); err != nil {
			return err
		}
	}
	return nil
}

func writePlane[T pixel.Sample](w io.Writer, p *rav1e.Plane[T], bitDepth int) error {
	buf := make([]byte, 0, p.Cfg.Width*2)
	for y := 0; y < p.Cfg.Height; y++ {
		buf = buf[:0]
		for _, v := range p.Row(y) {
			if bitDepth > 8 {
				buf = append(buf, byte(v), byte(uint16(v)>>8))
			} else {
				buf = append(buf, byte(v))
			}
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("mux: write y4m plane row: %w", err)
		}
	}
	return nil
}

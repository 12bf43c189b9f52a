package mux

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/xuguangxin/rav1e"
	"github.com/xuguangxin/rav1e/pixel"
)

// ReconDump streams reconstructed frames to disk through a zstd encoder.
// Raw reconstruction output is large and highly redundant; compressing it
// keeps debug dumps of long sequences practical.
type ReconDump struct {
	f  *os.File
	zw *zstd.Encoder
	y  *Y4mWriter
}

// CreateReconDump opens a compressed Y4M dump at path.
func CreateReconDump(
	path string, width, height int, fpsNum, fpsDen uint32,
	cs rav1e.ChromaSampling, bitDepth int,
) (*ReconDump, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("mux: open recon dump: %w", err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mux: init zstd writer: %w", err)
	}
	y, err := NewY4mWriter(zw, width, height, fpsNum, fpsDen, cs, bitDepth)
	if err != nil {
		zw.Close()
		f.Close()
		return nil, err
	}
	return &ReconDump{f: f, zw: zw, y: y}, nil
}

// WriteReconFrame appends one reconstructed frame to the dump.
func WriteReconFrame[T pixel.Sample](d *ReconDump, frame *rav1e.Frame[T]) error {
	return WriteY4mFrame(d.y, frame)
}

// Close finishes the zstd stream and closes the file.
func (d *ReconDump) Close() error {
	if err := d.zw.Close(); err != nil {
		d.f.Close()
		return fmt.Errorf("mux: close zstd stream: %w", err)
	}
	if err := d.f.Close(); err != nil {
		return fmt.Errorf("mux: close recon dump: %w", err)
	}
	return nil
}

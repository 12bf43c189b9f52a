package mux

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// ivfHeaderSize is the fixed IVF file header length.
const ivfHeaderSize = 32

// ivfMuxer writes the simple IVF framing: a 32-byte file header followed
// by length-prefixed frames. All integers are little-endian.
type ivfMuxer struct {
	f    *os.File
	w    *bufio.Writer
	opts options
}

func openIvf(path string, o options) (*ivfMuxer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("mux: open ivf output: %w", err)
	}
	return &ivfMuxer{f: f, w: bufio.NewWriter(f), opts: o}, nil
}

func (m *ivfMuxer) WriteHeader(width, height int, timebaseNum, timebaseDen uint32) error {
	var hdr [ivfHeaderSize]byte
	copy(hdr[0:4], "DKIF")
	binary.LittleEndian.PutUint16(hdr[4:6], 0) // version
	binary.LittleEndian.PutUint16(hdr[6:8], ivfHeaderSize)
	copy(hdr[8:12], m.opts.fourCC[:])
	binary.LittleEndian.PutUint16(hdr[12:14], uint16(width))
	binary.LittleEndian.PutUint16(hdr[14:16], uint16(height))
	binary.LittleEndian.PutUint32(hdr[16:20], timebaseDen)
	binary.LittleEndian.PutUint32(hdr[20:24], timebaseNum)
	// Frame count is unknown up front; left zero.

	if _, err := m.w.Write(hdr[:]); err != nil {
		return fmt.Errorf("mux: write ivf header: %w", err)
	}
	return nil
}

func (m *ivfMuxer) WriteFrame(pts uint64, data []byte) error {
	var hdr [12]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(len(data)))
	binary.LittleEndian.PutUint64(hdr[4:12], pts)
	if _, err := m.w.Write(hdr[:]); err != nil {
		return fmt.Errorf("mux: write ivf frame header: %w", err)
	}
	if _, err := m.w.Write(data); err != nil {
		return fmt.Errorf("mux: write ivf frame: %w", err)
	}
	return nil
}

func (m *ivfMuxer) Flush() error {
	if err := m.w.Flush(); err != nil {
		return fmt.Errorf("mux: flush ivf output: %w", err)
	}
	return nil
}

func (m *ivfMuxer) Close() error {
	if err := m.Flush(); err != nil {
		m.f.Close()
		return err
	}
	if err := m.f.Close(); err != nil {
		return fmt.Errorf("mux: close ivf output: %w", err)
	}
	return nil
}

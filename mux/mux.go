// Package mux writes encoder output into container formats.
//
// The Muxer interface is the contract the encoding loop drives: a header
// once, then one call per encoded packet in presentation order. The IVF
// implementation covers the common case; Y4M and the compressed
// reconstruction dump cover raw frame output for debugging.
package mux

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuguangxin/rav1e"
)

// Muxer writes encoded packets into a container.
type Muxer interface {
	// WriteHeader writes the container header. It must be called once,
	// before the first frame.
	WriteHeader(width, height int, timebaseNum, timebaseDen uint32) error
	// WriteFrame appends one encoded packet with its presentation
	// timestamp.
	WriteFrame(pts uint64, data []byte) error
	// Flush forces buffered output to the underlying file.
	Flush() error
	// Close flushes and releases the underlying file.
	Close() error
}

// Option configures muxer creation.
type Option func(*options)

type options struct {
	fourCC [4]byte
}

func defaultOptions() options {
	return options{fourCC: [4]byte{'A', 'V', '0', '1'}}
}

// WithFourCC overrides the codec tag written into the IVF header.
func WithFourCC(fourCC [4]byte) Option {
	return func(o *options) {
		o.fourCC = fourCC
	}
}

// Create opens a muxer for the given path, chosen by file extension.
// ".ivf" and unrecognized extensions yield the IVF muxer.
func Create(path string, opts ...Option) (Muxer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".webm", ".mkv":
		return nil, fmt.Errorf("mux: container format %q not supported, use .ivf", filepath.Ext(path))
	default:
		rav1e.Logger().Debug("creating ivf muxer", "path", path)
		return openIvf(path, o)
	}
}

// Package gosleep reads and writes the 32 byte header that prefixes SLEEP
// .bitfield, .signatures and .tree files.
package gosleep

import (
	"errors"
	"fmt"
	"github.com/aneshas/gosleep/core"
	"github.com/rs/zerolog"
	"io"
)

var (
	// ErrShortHeader signifies that the reader ran out of data before a full header was read
	ErrShortHeader = errors.New("gosleep: short header")

	// ErrPartialWrite signifies that the header was not fully written, which means the
	// file prefix is corrupted and the write should be retried
	ErrPartialWrite = errors.New("gosleep: header not fully written")

	// ErrNotCanonical is returned by Expect when a header is not the canonical header for its kind
	ErrNotCanonical = errors.New("gosleep: header does not match canonical layout")
)

type config struct {
	decode core.Config
	log    zerolog.Logger
}

// Option represents gosleep configuration option
type Option func(cfg config) config

// WithStrictPadding makes ReadHeader reject headers with non zero padding
func WithStrictPadding() Option {
	return func(cfg config) config {
		cfg.decode.StrictPadding = true

		return cfg
	}
}

// WithDecodeConfig configures the underlying decoder
func WithDecodeConfig(c core.Config) Option {
	return func(cfg config) config {
		cfg.decode = c

		return cfg
	}
}

// WithLogger configures the logger used to trace header reads and writes
func WithLogger(l zerolog.Logger) Option {
	return func(cfg config) config {
		cfg.log = l

		return cfg
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		decode: core.DefaultConfig,
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// ReadHeader reads exactly core.HeaderSize bytes from r and decodes them.
// r is left positioned at the first entry of the file body.
func ReadHeader(r io.Reader, opts ...Option) (core.Header, error) {
	cfg := newConfig(opts)

	var b [core.HeaderSize]byte

	n, err := io.ReadFull(r, b[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return core.Header{}, fmt.Errorf("%w: read %d of %d bytes: %v", ErrShortHeader, n, core.HeaderSize, err)
		}

		return core.Header{}, fmt.Errorf("gosleep: read header: %w", err)
	}

	h, err := core.Decode(b[:], core.WithConfig(cfg.decode))
	if err != nil {
		return core.Header{}, err
	}

	cfg.log.Debug().
		Stringer("file_type", h.FileType()).
		Uint16("entry_size", h.EntrySize()).
		Stringer("hash", h.HashType()).
		Msg("header read")

	return h, nil
}

// WriteHeader writes the encoded header to w
func WriteHeader(w io.Writer, h core.Header, opts ...Option) error {
	cfg := newConfig(opts)

	b := h.Encode()

	n, err := w.Write(b[:])
	if err != nil {
		if n > 0 {
			return fmt.Errorf("%w: %v", ErrPartialWrite, err)
		}

		return fmt.Errorf("gosleep: write header: %w", err)
	}

	if n != core.HeaderSize {
		return ErrPartialWrite
	}

	cfg.log.Debug().
		Stringer("file_type", h.FileType()).
		Uint16("entry_size", h.EntrySize()).
		Msg("header written")

	return nil
}

// Expect verifies that h is the canonical header for ft, so the records that
// follow it can be read with the well known entry size and algorithm
func Expect(h core.Header, ft core.FileType) error {
	if !ft.Valid() {
		return fmt.Errorf("%w: unknown file type %s", ErrNotCanonical, ft)
	}

	if h.FileType() != ft {
		return fmt.Errorf("%w: expected %s, got %s", ErrNotCanonical, ft, h.FileType())
	}

	if h != core.NewCanonical(ft) {
		return fmt.Errorf("%w: %s", ErrNotCanonical, h)
	}

	return nil
}

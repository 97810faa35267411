package idxgo

import "github.com/hupe1980/idxgo/codec"

type convertOptions struct {
	ignoreMissingKeys bool
	parallelism       int
}

// ConvertOption configures the array/dict converters.
type ConvertOption func(*convertOptions)

// IgnoreMissingKeys makes DictToArray skip entries whose coordinate key is
// absent from its axis selection instead of failing the whole conversion.
func IgnoreMissingKeys() ConvertOption {
	return func(o *convertOptions) {
		o.ignoreMissingKeys = true
	}
}

// WithParallelism splits the conversion into n concurrently processed
// chunks. Values below 2 keep the sequential path. The result is identical
// either way; parallel scatter is race free because injectivity puts
// distinct entries into distinct cells.
func WithParallelism(n int) ConvertOption {
	return func(o *convertOptions) {
		o.parallelism = n
	}
}

func applyConvertOptions(opts []ConvertOption) convertOptions {
	var o convertOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type snapshotOptions struct {
	codec       codec.Codec
	compression CompressionType
	logger      *Logger
}

// SnapshotOption configures Save and Load behavior.
type SnapshotOption func(*snapshotOptions)

// WithCodec configures the payload codec for Save, or supplies a custom
// codec for Load when the snapshot names one that is not built in.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) SnapshotOption {
	return func(o *snapshotOptions) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the snapshot compression. The default is
// CompressionZSTD.
func WithCompression(ct CompressionType) SnapshotOption {
	return func(o *snapshotOptions) {
		o.compression = ct
	}
}

// WithLogger configures structured logging for snapshot operations. The
// default discards all output.
func WithLogger(l *Logger) SnapshotOption {
	return func(o *snapshotOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applySnapshotOptions(opts []SnapshotOption) snapshotOptions {
	o := snapshotOptions{
		codec:       codec.Default,
		compression: CompressionZSTD,
		logger:      NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

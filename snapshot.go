package idxgo

import (
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/idxgo/codec"
)

// CompressionType defines the compression algorithm used for snapshot
// payloads.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 frame compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD compression (better ratio).
	CompressionZSTD CompressionType = 2
)

var snapshotMagic = [4]byte{'I', 'X', 'G', 'O'}

const snapshotVersion = 1

// Only the keys are stored: positions are the dense range 0..n-1 in key
// order, so they reconstruct for free.
type snapshotPayload[K comparable] struct {
	Keys []K `json:"keys"`
}

// Save writes a self-describing snapshot of the selection. The header
// records the codec name and compression type, so Load needs no
// out-of-band information to read it back.
func Save[K comparable](w io.Writer, s *Selection[K, int], opts ...SnapshotOption) error {
	o := applySnapshotOptions(opts)
	start := time.Now()

	payload, err := o.codec.Marshal(snapshotPayload[K]{Keys: s.Keys()})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	name := o.codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("codec name too long: %q", name)
	}
	header := make([]byte, 0, 7+len(name))
	header = append(header, snapshotMagic[:]...)
	header = append(header, snapshotVersion, byte(o.compression), byte(len(name)))
	header = append(header, name...)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}

	switch o.compression {
	case CompressionNone:
		_, err = w.Write(payload)
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		if _, err = lw.Write(payload); err == nil {
			err = lw.Close()
		}
	case CompressionZSTD:
		var zw *zstd.Encoder
		if zw, err = zstd.NewWriter(w); err == nil {
			if _, err = zw.Write(payload); err == nil {
				err = zw.Close()
			}
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, o.compression)
	}
	if err != nil {
		return fmt.Errorf("write snapshot payload: %w", err)
	}

	o.logger.Debug("selection snapshot saved",
		"keys", s.Len(),
		"bytes", len(payload),
		"codec", name,
		"took", time.Since(start),
	)
	return nil
}

// Load reads a snapshot written by Save and reconstructs the selection.
// The codec is selected by the name stored in the header; a custom codec
// passed via WithCodec is used when its name matches.
func Load[K comparable](r io.Reader, opts ...SnapshotOption) (*Selection[K, int], error) {
	o := applySnapshotOptions(opts)
	start := time.Now()

	header := make([]byte, 7)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if [4]byte(header[:4]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrInvalidSnapshot)
	}
	if header[4] != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, header[4])
	}

	nameBuf := make([]byte, int(header[6]))
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	name := string(nameBuf)

	c, ok := codec.ByName(name)
	if !ok {
		if o.codec != nil && o.codec.Name() == name {
			c = o.codec
		} else {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
		}
	}

	var pr io.Reader
	switch CompressionType(header[5]) {
	case CompressionNone:
		pr = r
	case CompressionLZ4:
		pr = lz4.NewReader(r)
	case CompressionZSTD:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("read snapshot payload: %w", err)
		}
		defer zr.Close()
		pr = zr
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, header[5])
	}

	payload, err := io.ReadAll(pr)
	if err != nil {
		return nil, fmt.Errorf("read snapshot payload: %w", err)
	}

	var snap snapshotPayload[K]
	if err := c.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	sel, err := FromKeys(snap.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	o.logger.Debug("selection snapshot loaded",
		"keys", sel.Len(),
		"codec", name,
		"took", time.Since(start),
	)
	return sel, nil
}

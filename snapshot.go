package clustergo

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/clustergo/blobstore"
	"github.com/hupe1980/clustergo/codec"
	"github.com/hupe1980/clustergo/matrix"
)

// snapshotMagic identifies clustergo snapshot blobs (version 1).
var snapshotMagic = []byte("CGSNP1")

// ErrBadSnapshot is returned when a blob is not a valid clustergo snapshot.
var ErrBadSnapshot = errors.New("invalid snapshot")

// Compression selects the compression applied to snapshot payloads.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionLZ4
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

func compressionByName(name string) (Compression, bool) {
	switch name {
	case "none":
		return CompressionNone, true
	case "lz4":
		return CompressionLZ4, true
	case "zstd":
		return CompressionZstd, true
	default:
		return 0, false
	}
}

func (c Compression) compress(data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionZstd:
		w, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		out := w.EncodeAll(data, nil)
		w.Close()
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported compression %d", ErrBadSnapshot, int(c))
	}
}

func (c Compression) decompress(data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	case CompressionZstd:
		r, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return r.DecodeAll(data, nil)
	default:
		return nil, fmt.Errorf("%w: unsupported compression %d", ErrBadSnapshot, int(c))
	}
}

// snapshot is the codec payload of a persisted fit.
type snapshot struct {
	K          int       `json:"k"`
	Features   int       `json:"features"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
	Centroids  []float64 `json:"centroids"` // row-major, features x k
	Labels     []int     `json:"labels"`
}

// SaveSnapshot persists the fitted model (centroids, labels, iteration state)
// to the store under the given name. The blob is self-describing: it records
// the codec and compression by name, so it loads regardless of the loading
// engine's configuration.
func (km *KMeans) SaveSnapshot(ctx context.Context, store blobstore.Store, name string) error {
	start := time.Now()
	err := km.saveSnapshot(ctx, store, name)
	km.metrics.RecordSnapshotSave(time.Since(start), err)
	km.logger.LogSnapshot(ctx, "save", name, err)
	return err
}

func (km *KMeans) saveSnapshot(ctx context.Context, store blobstore.Store, name string) error {
	if !km.fitted {
		return ErrNotFitted
	}

	c := km.codec
	if c == nil {
		c = codec.Default
	}

	snap := snapshot{
		K:          km.k,
		Features:   km.features,
		Iterations: km.iterations,
		Converged:  km.converged,
		Centroids:  km.centroids.RawData(),
		Labels:     km.labels,
	}

	payload, err := c.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	payload, err = km.compression.compress(payload)
	if err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(snapshotMagic)
	writeString(&buf, c.Name())
	writeString(&buf, km.compression.String())
	buf.Write(payload)

	return store.Put(ctx, name, buf.Bytes())
}

// LoadSnapshot replaces the engine's fitted state with a snapshot previously
// written by SaveSnapshot. Configuration (initializer, RNG, options) is
// untouched; only the fit result is restored.
func (km *KMeans) LoadSnapshot(ctx context.Context, store blobstore.Store, name string) error {
	start := time.Now()
	err := km.loadSnapshot(ctx, store, name)
	km.metrics.RecordSnapshotLoad(time.Since(start), err)
	km.logger.LogSnapshot(ctx, "load", name, err)
	return err
}

func (km *KMeans) loadSnapshot(ctx context.Context, store blobstore.Store, name string) error {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	r := bytes.NewReader(data)
	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, magic); err != nil || !bytes.Equal(magic, snapshotMagic) {
		return fmt.Errorf("%w: bad magic", ErrBadSnapshot)
	}

	codecName, err := readString(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	c, ok := codec.ByName(codecName)
	if !ok {
		return fmt.Errorf("%w: unknown codec %q", ErrBadSnapshot, codecName)
	}

	compName, err := readString(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	comp, ok := compressionByName(compName)
	if !ok {
		return fmt.Errorf("%w: unknown compression %q", ErrBadSnapshot, compName)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	payload, err = comp.decompress(payload)
	if err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}

	var snap snapshot
	if err := c.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.K <= 0 || snap.Features <= 0 || len(snap.Centroids) != snap.K*snap.Features {
		return fmt.Errorf("%w: inconsistent dimensions", ErrBadSnapshot)
	}
	for _, label := range snap.Labels {
		if label < 0 || label >= snap.K {
			return fmt.Errorf("%w: label out of range", ErrBadSnapshot)
		}
	}

	centroids, err := matrix.NewDenseFromData(snap.Features, snap.K, snap.Centroids)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	km.k = snap.K
	km.features = snap.Features
	km.iterations = snap.Iterations
	km.converged = snap.Converged
	km.centroids = centroids
	km.labels = snap.Labels
	km.rebuildMembers()
	km.fitted = true

	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(s)))
	buf.Write(lenBuf[:])
	buf.WriteString(s)
}

func readString(r io.Reader) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	b := make([]byte, binary.BigEndian.Uint16(lenBuf[:]))
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

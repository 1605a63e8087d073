// Package chunkcache persists generated terrain chunks on disk, addressed
// by their deterministic generation key. Because identical generation
// inputs always produce bit-identical chunks, a hit can be substituted for
// a regeneration without any validation beyond the key match.
package chunkcache

import (
	"bufio"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/chazu/regolith/pkg/terrain"
)

const fileExt = ".chunk.zst"

// Store is a directory of zstd-compressed chunk records, one file per key.
// Safe for concurrent use by distinct keys; concurrent writers of the same
// key write the same bytes, so the race is benign.
type Store struct {
	dir string
}

// NewStore creates the cache directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("chunkcache: directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("chunkcache: creating %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// validKey accepts only the hex keys the generator produces, which also
// keeps file names safe.
func validKey(key string) error {
	if key == "" {
		return fmt.Errorf("chunkcache: key must not be empty")
	}
	for _, r := range key {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return fmt.Errorf("chunkcache: key %q is not lowercase hex", key)
		}
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

// Put writes a chunk record under its key, replacing any existing entry.
func (s *Store) Put(ch *terrain.Chunk) error {
	if ch == nil || ch.Mesh == nil {
		return fmt.Errorf("chunkcache: chunk and mesh must not be nil")
	}
	if err := validKey(ch.Key); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path(ch.Key), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("chunkcache: opening %s: %w", s.path(ch.Key), err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("chunkcache: zstd writer: %w", err)
	}

	bw := bufio.NewWriter(enc)
	if err := gob.NewEncoder(bw).Encode(ch); err != nil {
		enc.Close()
		return fmt.Errorf("chunkcache: encoding chunk %s: %w", ch.Key, err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("chunkcache: finishing %s: %w", ch.Key, err)
	}
	return f.Close()
}

// Get loads the chunk stored under key. A miss returns (nil, false, nil).
func (s *Store) Get(key string) (*terrain.Chunk, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}

	f, err := os.Open(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("chunkcache: opening %s: %w", s.path(key), err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, false, fmt.Errorf("chunkcache: zstd reader: %w", err)
	}
	defer dec.Close()

	var ch terrain.Chunk
	if err := gob.NewDecoder(bufio.NewReader(dec)).Decode(&ch); err != nil {
		return nil, false, fmt.Errorf("chunkcache: decoding chunk %s: %w", key, err)
	}
	return &ch, true, nil
}

// Delete removes the entry for key. Deleting a missing key is not an
// error.
func (s *Store) Delete(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

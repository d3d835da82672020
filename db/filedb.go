package db

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/lucaskalb/choicex/choice"
)

// fileMagic tags the engine-private on-disk format (spec.md §6.5: "File
// contents = the choice sequence, sufficient to reconstruct the
// Attempt. Format is engine-private.").
var fileMagic = [4]byte{'c', 'x', 'd', '1'}

// FileDB is the default directory-backed Example DB: one directory per
// property-owning module, one file per property keyed by a sanitized
// form of its stable key (spec.md §6.5). Writes go through
// github.com/natefinch/atomic so a reader never observes a
// partially-written file.
type FileDB struct {
	dir string
}

// NewFileDB returns a FileDB rooted at dir, creating it if necessary.
func NewFileDB(dir string) (*FileDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("db: create %s: %w", dir, err)
	}
	return &FileDB{dir: dir}, nil
}

// List returns every key with a stored entry, in directory order.
func (f *FileDB) List() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("db: list %s: %w", f.dir, err)
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		keys = append(keys, unsanitizeKey(e.Name()))
	}
	return keys, nil
}

// Put persists a clone of a under key, atomically with respect to
// concurrent readers.
func (f *FileDB) Put(key string, a choice.Attempt) error {
	path := filepath.Join(f.dir, sanitizeKey(key))
	return atomic.WriteFile(path, bytes.NewReader(encodeAttempt(a)))
}

// Get returns the Attempt stored under key. A missing or corrupted
// entry is reported as ok=false with a nil error, per spec.md §6.5
// ("corrupted files are treated as absent").
func (f *FileDB) Get(key string) (choice.Attempt, bool, error) {
	path := filepath.Join(f.dir, sanitizeKey(key))
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return choice.Attempt{}, false, nil
		}
		return choice.Attempt{}, false, err
	}
	a, ok := decodeAttempt(raw)
	if !ok {
		return choice.Attempt{}, false, nil
	}
	return a, true, nil
}

// Delete removes the entry stored under key, if any. A missing file is
// not an error.
func (f *FileDB) Delete(key string) error {
	path := filepath.Join(f.dir, sanitizeKey(key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("db: delete %s: %w", path, err)
	}
	return nil
}

// encodeAttempt serializes just the choice sequence: enough to
// reconstruct the Attempt for replay (Generation/MaxGeneration/Events
// are re-derived by the run that replays it, not by the DB).
func encodeAttempt(a choice.Attempt) []byte {
	var buf bytes.Buffer
	buf.Write(fileMagic[:])
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(a.Choices)))
	buf.Write(lenBuf[:n])
	for _, c := range a.Choices {
		n := binary.PutUvarint(lenBuf[:], c)
		buf.Write(lenBuf[:n])
	}
	return buf.Bytes()
}

func decodeAttempt(raw []byte) (choice.Attempt, bool) {
	if len(raw) < len(fileMagic) || !bytes.Equal(raw[:len(fileMagic)], fileMagic[:]) {
		return choice.Attempt{}, false
	}
	r := bytes.NewReader(raw[len(fileMagic):])
	count, err := binary.ReadUvarint(r)
	if err != nil {
		return choice.Attempt{}, false
	}
	choices := make([]uint64, 0, count)
	for i := uint64(0); i < count; i++ {
		v, err := binary.ReadUvarint(r)
		if err != nil {
			return choice.Attempt{}, false
		}
		choices = append(choices, v)
	}
	return choice.Attempt{Choices: choices, MaxGeneration: -1}, true
}

// sanitizeKey reversibly escapes any byte outside [A-Za-z0-9.-] as
// "_XX" (uppercase hex), so arbitrary property keys are always safe
// filenames. "_" itself is escaped too, which keeps the scheme
// reversible.
func sanitizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "_%02X", c)
		}
	}
	return b.String()
}

func unsanitizeKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '_' && i+2 < len(name) {
			var v int
			if _, err := fmt.Sscanf(name[i+1:i+3], "%02X", &v); err == nil {
				b.WriteByte(byte(v))
				i += 2
				continue
			}
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

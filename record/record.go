// Package record persists the best score ever reached as a flat decimal text file.
//
// Reading never fails from the caller's point of view: a missing file or a file that
// does not hold a non-negative integer on its first line is reported through the
// Result status and collapses to a record of 0.
package record

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// DefaultFile is where the record lives when nothing else is configured.
const DefaultFile = "data/record.txt"

// Status tells how a Load went.
type Status int

const (
	Loaded Status = iota
	Absent
	Malformed
)

func (s Status) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Absent:
		return "absent"
	case Malformed:
		return "malformed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of reading a record. Value is only meaningful when
// Status is Loaded; Err carries the underlying cause otherwise.
type Result struct {
	Value  int
	Status Status
	Err    error
}

// OrZero returns the loaded value, or 0 for absent and malformed records.
func (r Result) OrZero() int {
	if r.Status != Loaded {
		return 0
	}
	return r.Value
}

// FileStore reads and writes the record file at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. An empty path selects DefaultFile.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	return &FileStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the record from disk.
func (s *FileStore) Load() Result {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Status: Absent, Err: err}
		}
		return Result{Status: Absent, Err: fmt.Errorf("reading record file: %w", err)}
	}
	return Parse(data)
}

// Save overwrites the record file with score, creating its directory if needed.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("record must be non-negative, got %d", score)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating record directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("writing record file: %w", err)
	}
	return nil
}

// Parse interprets the first line of data as a record value.
func Parse(data []byte) Result {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() {
		return Result{Status: Malformed, Err: errors.New("empty record file")}
	}
	line := strings.TrimSpace(sc.Text())
	if line == "" {
		return Result{Status: Malformed, Err: errors.New("empty record file")}
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return Result{Status: Malformed, Err: fmt.Errorf("parsing record %q: %w", line, err)}
	}
	if v < 0 {
		return Result{Status: Malformed, Err: fmt.Errorf("negative record %d", v)}
	}
	return Result{Value: v, Status: Loaded}
}

// MemoryStore keeps the record in memory. The zero value holds no record.
type MemoryStore struct {
	mu    sync.Mutex
	value int
	set   bool
	saves int
}

// NewMemoryStore returns a store that already holds value.
func NewMemoryStore(value int) *MemoryStore {
	return &MemoryStore{value: value, set: true}
}

func (m *MemoryStore) Load() Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return Result{Status: Absent}
	}
	return Result{Value: m.value, Status: Loaded}
}

func (m *MemoryStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("record must be non-negative, got %d", score)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = score
	m.set = true
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

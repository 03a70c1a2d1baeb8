package record

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "record.txt")
	store := NewFileStore(path)

	for _, want := range []int{0, 7, 123, 9} {
		if err := store.Save(want); err != nil {
			t.Fatalf("Save(%d): %v", want, err)
		}
		got := store.Load()
		if got.Status != Loaded || got.Value != want {
			t.Errorf("Load() after Save(%d) = %+v", want, got)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "9" {
		t.Errorf("file contents = %q, want %q", data, "9")
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.txt"))
	got := store.Load()
	if got.Status != Absent {
		t.Errorf("Status = %v, want absent", got.Status)
	}
	if got.OrZero() != 0 {
		t.Errorf("OrZero() = %d, want 0", got.OrZero())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		status Status
		value  int
	}{
		{"plain", "42", Loaded, 42},
		{"trailing newline", "42\n", Loaded, 42},
		{"crlf", "17\r\n", Loaded, 17},
		{"only first line", "5\n99\n", Loaded, 5},
		{"padded", "  8  ", Loaded, 8},
		{"empty", "", Malformed, 0},
		{"blank line", "\n12", Malformed, 0},
		{"garbage", "lots", Malformed, 0},
		{"negative", "-3", Malformed, 0},
		{"float", "3.5", Malformed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte(tt.data))
			if got.Status != tt.status {
				t.Fatalf("Parse(%q).Status = %v, want %v", tt.data, got.Status, tt.status)
			}
			if got.OrZero() != tt.value {
				t.Errorf("Parse(%q).OrZero() = %d, want %d", tt.data, got.OrZero(), tt.value)
			}
			if tt.status != Loaded && got.Err == nil {
				t.Errorf("Parse(%q) has no error for status %v", tt.data, got.Status)
			}
		})
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.txt")
	if err := os.WriteFile(path, []byte("not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	got := NewFileStore(path).Load()
	if got.Status != Malformed || got.OrZero() != 0 {
		t.Errorf("Load() = %+v, want malformed 0", got)
	}
}

func TestSaveTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.txt")
	if err := os.WriteFile(path, []byte("123456\nextra"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)
	if err := store.Save(4); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "4" {
		t.Errorf("file contents = %q, want %q", data, "4")
	}
}

func TestSaveRejectsNegative(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "record.txt"))
	if err := store.Save(-1); err == nil {
		t.Error("Save(-1) succeeded, want error")
	}
	if err := NewMemoryStore(0).Save(-1); err == nil {
		t.Error("MemoryStore.Save(-1) succeeded, want error")
	}
}

func TestMemoryStore(t *testing.T) {
	var m MemoryStore
	if got := m.Load(); got.Status != Absent {
		t.Errorf("zero MemoryStore Load() = %+v, want absent", got)
	}
	if err := m.Save(11); err != nil {
		t.Fatal(err)
	}
	if got := m.Load(); got.Status != Loaded || got.Value != 11 {
		t.Errorf("Load() = %+v, want 11", got)
	}
	if m.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", m.Saves())
	}
}

func TestDefaultPath(t *testing.T) {
	if got := NewFileStore("").Path(); got != DefaultFile {
		t.Errorf("Path() = %q, want %q", got, DefaultFile)
	}
}

package scores

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	records, err := Load(filepath.Join(t.TempDir(), "none.txt"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records from a missing file", len(records))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	want := []Record{
		{Level: 2, Pushes: 14, Moves: 60, Elapsed: 75},
		{Level: 0, Pushes: 1, Moves: 1, Elapsed: 0},
		{Level: 1, Pushes: math.MaxUint16, Moves: math.MaxUint16, Elapsed: math.MaxUint32},
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := Save(path, []Record{{Level: 3, Pushes: 4, Moves: 5, Elapsed: 6}}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1\n1\n3 4 5 6\n" {
		t.Errorf("file = %q", data)
	}
}

func TestSaveEmptyWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := Save(path, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("empty save created a file (stat err %v)", err)
	}
}

func TestSaveTooManyRecords(t *testing.T) {
	records := make([]Record, MaxRecords+1)
	for i := range records {
		records[i].Level = uint16(i)
	}
	if err := Save(filepath.Join(t.TempDir(), "s.txt"), records); err == nil {
		t.Error("expected an error for an unencodable count")
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		reason  string
	}{
		{"wrong version", "2\n1\n0 1 1 0\n", "version"},
		{"garbage version", "x\n", "version"},
		{"empty file", "", "version"},
		{"count too high", "1\n3\n0 1 1 0\n1 2 2 0\n", "read 3 parsed 2"},
		{"count too low", "1\n0\n0 1 1 0\n", "read 0 parsed 1"},
		{"missing count", "1\n", "number of scores"},
		{"short record", "1\n1\n0 1 1\n", "line 3"},
		{"negative field", "1\n1\n0 -1 1 0\n", "line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FormatError", err)
			}
			msg := err.Error()
			if !strings.Contains(msg, tt.reason) {
				t.Errorf("message %q lacks %q", msg, tt.reason)
			}
			if !strings.Contains(msg, "delete the scores file "+path) {
				t.Errorf("message %q does not tell the operator what to delete", msg)
			}
		})
	}
}

func TestLoadIgnoresBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte("1\n2\n0 1 1 3\n\n1 2 2 4\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records", len(got))
	}
}

func TestNewRecordSaturates(t *testing.T) {
	r := NewRecord(1, 70000, -3, 9)
	if r.Pushes != math.MaxUint16 || r.Moves != 0 || r.Level != 1 || r.Elapsed != 9 {
		t.Errorf("got %+v", r)
	}
}

func TestBookFirstWinWins(t *testing.T) {
	b := NewBook("", nil)
	if !b.Add(Record{Level: 0, Pushes: 10, Moves: 20}) {
		t.Fatal("first add rejected")
	}
	if b.Add(Record{Level: 0, Pushes: 1, Moves: 1}) {
		t.Error("second add for the same level accepted")
	}
	r, ok := b.Get(0)
	if !ok || r.Pushes != 10 {
		t.Errorf("Get(0) = %+v, %v", r, ok)
	}
	if b.Len() != 1 {
		t.Errorf("len = %d", b.Len())
	}
}

func TestBookDropsLoadedDuplicates(t *testing.T) {
	b := NewBook("", []Record{{Level: 1, Moves: 5}, {Level: 1, Moves: 3}})
	if b.Len() != 1 {
		t.Fatalf("len = %d, want 1", b.Len())
	}
	if r, _ := b.Get(1); r.Moves != 5 {
		t.Errorf("kept %+v, want the earlier record", r)
	}
}

func TestFirstUnsolved(t *testing.T) {
	tests := []struct {
		name   string
		solved []uint16
		n      int
		want   int
	}{
		{"none solved", nil, 3, 0},
		{"gap", []uint16{0, 2}, 3, 1},
		{"out of order", []uint16{1, 0}, 3, 2},
		{"all solved", []uint16{0, 1, 2}, 3, 3},
		{"records beyond set", []uint16{5}, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBook("", nil)
			for _, l := range tt.solved {
				b.Add(Record{Level: l})
			}
			if got := b.FirstUnsolved(tt.n); got != tt.want {
				t.Errorf("FirstUnsolved(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestBookSavePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.txt")
	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := b.Save(); err != nil {
		t.Fatalf("empty Save: %v", err)
	}
	b.Add(Record{Level: 0, Pushes: 1, Moves: 2, Elapsed: 3})
	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !again.Has(0) || again.Len() != 1 {
		t.Errorf("reloaded book = %+v", again.Records())
	}
}

package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/chunkvec"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err.Error())
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunkvec")
	defer teardown()
	//
	content := strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 40)
	blocks, err := Load(writeFile(t, content), 0, chunkvec.WithChunkCapacity(8))
	if err != nil {
		t.Fatal(err.Error())
	}
	if blocks.Len() != (len(content)+255)/256 {
		t.Errorf("expected %d blocks of 256 bytes, have %d", (len(content)+255)/256, blocks.Len())
	}
	if got := strings.Join(blocks.ToSlice(), ""); got != content {
		t.Errorf("blocks do not reproduce the file content")
	}
	if err := blocks.Check(); err != nil {
		t.Error(err)
	}
}

func TestLoadKeepsRunesWhole(t *testing.T) {
	content := strings.Repeat("aä€𝄞", 25)
	for _, size := range []int{1, 4, 5, 6, 7, 10} {
		blocks, err := Load(writeFile(t, content), size)
		if err != nil {
			t.Fatal(err.Error())
		}
		var sb strings.Builder
		for b := range blocks.Values() {
			if !utf8.ValidString(b) {
				t.Fatalf("block size %d: block %q splits a rune", size, b)
			}
			if len(b) > max(size, utf8.UTFMax) {
				t.Fatalf("block size %d: block %q too long", size, b)
			}
			sb.WriteString(b)
		}
		if sb.String() != content {
			t.Fatalf("block size %d: blocks do not reproduce the file content", size)
		}
	}
}

func TestLoadEmptyFile(t *testing.T) {
	blocks, err := Load(writeFile(t, ""), 0)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !blocks.IsEmpty() {
		t.Errorf("expected no blocks, have %d", blocks.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(t.TempDir(), 0); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, have %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing"), 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, have %v", err)
	}
	if _, err := Load(writeFile(t, "x"), 0, chunkvec.WithChunkCapacity(-1)); !errors.Is(err, chunkvec.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, have %v", err)
	}
}

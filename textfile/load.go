package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/npillmayer/chunkvec"
)

// Some constants for block size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrNotRegular is returned for paths which do not name a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// Load reads a file, which must be a text file, and stores its content as a
// vector of blocks. Clients may indicate a recommended block size in bytes;
// 0 lets Load choose one. Blocks may be shorter than the block size, either
// at the end of the file or to keep a rune in one piece.
//
// opts configure the vector, e.g. its chunk capacity.
func Load(name string, blockSize int, opts ...chunkvec.Option) (*chunkvec.Vector[string], error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	blocks, err := chunkvec.New[string](opts...)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	blockSize = chooseBlockSize(info.Size(), blockSize)
	tracer().Debugf("textfile: loading %s (%d bytes) in blocks of %d", name, info.Size(), blockSize)
	if err := readBlocks(bufio.NewReader(file), blockSize, blocks); err != nil {
		blocks.Release()
		return nil, fmt.Errorf("loading text file %s: %w", name, err)
	}
	return blocks, nil
}

// chooseBlockSize grows blocks with the file. Requested sizes below
// utf8.UTFMax are raised, as a block must be able to hold any rune.
func chooseBlockSize(size int64, requested int) int {
	if requested > 0 {
		return max(requested, utf8.UTFMax)
	}
	switch {
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

func readBlocks(r io.Reader, blockSize int, blocks *chunkvec.Vector[string]) error {
	buf := make([]byte, 0, blockSize)
	for {
		n, err := io.ReadFull(r, buf[len(buf):blockSize])
		buf = buf[:len(buf)+n]
		eof := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
		if err != nil && !eof {
			return err
		}
		cut := len(buf)
		if !eof {
			cut = completeRunes(buf)
		}
		if cut > 0 {
			blocks.Push(string(buf[:cut]))
		}
		buf = buf[:copy(buf, buf[cut:])]
		if eof {
			return nil
		}
	}
}

// completeRunes returns the length of the longest prefix of buf which does
// not end in the middle of a rune. Invalid encodings are not split up.
func completeRunes(buf []byte) int {
	for i := len(buf) - 1; i >= 0 && i >= len(buf)-utf8.UTFMax; i-- {
		if utf8.RuneStart(buf[i]) {
			if utf8.FullRune(buf[i:]) {
				return len(buf)
			}
			return i
		}
	}
	return len(buf)
}

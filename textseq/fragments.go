package textseq

import (
	"bufio"
	"iter"
	"strings"
	"sync"

	"github.com/npillmayer/chunkvec"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Fragment is a piece of text between two line-break opportunities.
type Fragment struct {
	Text  string
	Width int // display width in fixed-width cells
}

var setupGraphemes sync.Once

// Fragments returns an iterator over the line-break fragments of text.
//
// Widths are measured in context; a nil context means uax11.LatinContext.
func Fragments(text string, context *uax11.Context) iter.Seq[Fragment] {
	if context == nil {
		context = uax11.LatinContext
	}
	return func(yield func(Fragment) bool) {
		setupGraphemes.Do(grapheme.SetupGraphemeClasses)
		linewrap := uax14.NewLineWrap()
		segmenter := segment.NewSegmenter(linewrap)
		segmenter.Init(bufio.NewReader(strings.NewReader(text)))
		for segmenter.Next() {
			frag := string(segmenter.Bytes())
			gstr := grapheme.StringFromString(frag)
			if !yield(Fragment{Text: frag, Width: uax11.StringWidth(gstr, context)}) {
				return
			}
		}
	}
}

// Segment splits text into fragments and collects them in a vector.
func Segment(text string, context *uax11.Context, opts ...chunkvec.Option) (*chunkvec.Vector[Fragment], error) {
	frags, err := chunkvec.New[Fragment](opts...)
	if err != nil {
		return nil, err
	}
	frags.Extend(Fragments(text, context))
	tracer().Debugf("textseq: %d bytes segmented into %d fragments", len(text), frags.Len())
	return frags, nil
}

// Width returns the summed display width of all fragments.
func Width[C chunkvec.ChunkSizer](frags *chunkvec.Vec[Fragment, C]) int {
	w := 0
	for f := range frags.Values() {
		w += f.Width
	}
	return w
}

// String concatenates the text of all fragments.
func String[C chunkvec.ChunkSizer](frags *chunkvec.Vec[Fragment, C]) string {
	var sb strings.Builder
	for f := range frags.Values() {
		sb.WriteString(f.Text)
	}
	return sb.String()
}

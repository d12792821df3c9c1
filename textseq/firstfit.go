package textseq

import "github.com/npillmayer/chunkvec"

/*
FirstFit finds line breaks for a sequence of fragments, filling each line as
far as possible.

	1. | SpaceLeft := LineWidth
	2. | for each Word in Text
	3. |      if (Width(Word) > SpaceLeft) and line is not empty
	4. |           start a new line with Word
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - Width(Word)

The result holds the indices of the fragments which start a new line; the
first line is implied. A fragment wider than the line gets a line of its own.
*/
func FirstFit[C chunkvec.ChunkSizer](frags *chunkvec.Vec[Fragment, C], linewidth int) []int {
	breaks := make([]int, 0, 16)
	spaceleft := linewidth
	linestart := true
	for i, f := range frags.All() {
		if !linestart && f.Width > spaceleft {
			breaks = append(breaks, i)
			tracer().Debugf("textseq: break before fragment %d", i)
			spaceleft = linewidth
		}
		spaceleft -= f.Width
		linestart = false
	}
	return breaks
}

// Lines applies breaks, as returned by FirstFit, and returns the text of each
// line.
func Lines[C chunkvec.ChunkSizer](frags *chunkvec.Vec[Fragment, C], breaks []int) []string {
	lines := make([]string, 0, len(breaks)+1)
	line := ""
	next := 0
	for i, f := range frags.All() {
		if next < len(breaks) && breaks[next] == i {
			lines = append(lines, line)
			line = ""
			next++
		}
		line += f.Text
	}
	if line != "" || frags.Len() > 0 {
		lines = append(lines, line)
	}
	return lines
}

package chunkvec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Vec2Dot outputs the chunk layout of a vector in Graphviz DOT format
// (for debugging purposes). Live slots are labelled with their values.
func Vec2Dot[T any, C ChunkSizer](v *Vec[T, C], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	nodelist += fmt.Sprintf("\"vec\" [label=\"%d / %d\",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle];\n",
		v.Len(), v.AllocatedCapacity())
	for i, c := range v.chunkList() {
		cells := make([]string, 0, c.Cap()+1)
		cells = append(cells, fmt.Sprintf("#%d", i))
		for off := range c.Cap() {
			if off < c.Len() {
				cells = append(cells, dotEscape(fmt.Sprintf("%v", *c.Slot(off))))
			} else {
				cells = append(cells, " ")
			}
		}
		styles := ",shape=record"
		if c.IsFull() {
			styles += ",style=filled,fillcolor=\"#CCDDFF\""
		}
		nodelist += fmt.Sprintf("\"c%d\" [label=\"%s\"%s];\n", i, strings.Join(cells, "|"), styles)
		edgelist += fmt.Sprintf("\"vec\" -> \"c%d\";\n", i)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `|`, `\|`,
	`{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`)

func dotEscape(s string) string {
	if r := []rune(s); len(r) > 16 {
		s = string(r[:15]) + "…"
	}
	return dotEscaper.Replace(s)
}

// Dump prints the chunk layout of the vector, one line per chunk, with a cell
// per slot. Output to a terminal is colored and wrapped to the terminal width.
func (v *Vec[T, C]) Dump(w io.Writer) error {
	width, colored := terminalProperties(w)
	live := color.New(color.FgGreen)
	free := color.New(color.Faint)
	header := color.New(color.Bold)
	for _, c := range []*color.Color{live, free, header} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	sum := v.Stats()
	if _, err := header.Fprintf(w, "chunkvec: len=%d chunks=%d capacity=%d allocated=%d utilization=%.2f\n",
		v.Len(), v.ChunkCount(), v.ChunkCapacity(), v.AllocatedCapacity(), sum.Utilization()); err != nil {
		tracer().Errorf("vector dump: %s", err.Error())
		return err
	}
	const margin = 16 // room for chunk number and fill count
	cells := max(width-margin, 8)
	for i, c := range v.chunkList() {
		fmt.Fprintf(w, "#%-5d ", i)
		for off := range c.Cap() {
			if off > 0 && off%cells == 0 {
				fmt.Fprint(w, "\n       ")
			}
			if off < c.Len() {
				live.Fprint(w, "■")
			} else {
				free.Fprint(w, "·")
			}
		}
		if _, err := fmt.Fprintf(w, "  %d/%d\n", c.Len(), c.Cap()); err != nil {
			tracer().Errorf("vector dump: %s", err.Error())
			return err
		}
	}
	return nil
}

// terminalProperties reports the column count of w and whether w is an
// interactive terminal. Writers other than terminals get 80 columns.
func terminalProperties(w io.Writer) (width int, isTerminal bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 80, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}

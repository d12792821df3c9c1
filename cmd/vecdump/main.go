// Command vecdump reads lines from standard input into a chunked vector and
// prints the resulting chunk layout.
//
// Usage:
//
//	vecdump [flags] < input
//
// Removals are applied in the order given, after all lines have been read.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/chunkvec"
	"github.com/npillmayer/chunkvec/textfile"
	"github.com/npillmayer/chunkvec/textseq"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	chunkSize  int
	file       string
	blockSize  int
	dot        bool
	fragments  bool
	wrap       int
	remove     []int
	swapRemove []int
	truncate   int
}

func run(args []string, in io.Reader, out io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("vecdump", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVarP(&opts.chunkSize, "chunk-size", "c", chunkvec.DefaultChunkCapacity, "number of slots per chunk")
	flagSet.StringVarP(&opts.file, "file", "f", "", "store blocks of this text file instead of reading standard input")
	flagSet.IntVar(&opts.blockSize, "block-size", 0, "with --file: block size in bytes (default: chosen from the file size)")
	flagSet.BoolVar(&opts.dot, "dot", false, "print Graphviz DOT instead of a chunk listing")
	flagSet.BoolVar(&opts.fragments, "fragments", false, "store line-break fragments of the input instead of lines")
	flagSet.IntVar(&opts.wrap, "wrap", 0, "with --fragments: print the input wrapped to this width")
	flagSet.IntSliceVar(&opts.remove, "remove", nil, "indices to remove, shifting later values")
	flagSet.IntSliceVar(&opts.swapRemove, "swap-remove", nil, "indices to remove, filling the gap with the last value")
	flagSet.IntVar(&opts.truncate, "truncate", -1, "truncate to this length")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, out)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet, out)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if opts.wrap > 0 && !opts.fragments {
		return errors.New("--wrap requires --fragments")
	}
	if opts.file != "" && opts.fragments {
		return errors.New("--file and --fragments are mutually exclusive")
	}
	if opts.file != "" {
		return runFile(opts, out)
	}
	if opts.fragments {
		return runFragments(opts, in, out)
	}
	return runLines(opts, in, out)
}

func runLines(opts options, in io.Reader, out io.Writer) error {
	v, err := chunkvec.New[string](chunkvec.WithChunkCapacity(opts.chunkSize))
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		v.Push(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if err := edit(v, opts); err != nil {
		return err
	}
	return show(v, opts, out)
}

func runFile(opts options, out io.Writer) error {
	v, err := textfile.Load(opts.file, opts.blockSize, chunkvec.WithChunkCapacity(opts.chunkSize))
	if err != nil {
		return err
	}
	if err := edit(v, opts); err != nil {
		return err
	}
	return show(v, opts, out)
}

func runFragments(opts options, in io.Reader, out io.Writer) error {
	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	v, err := textseq.Segment(string(text), nil, chunkvec.WithChunkCapacity(opts.chunkSize))
	if err != nil {
		return err
	}
	if err := edit(v, opts); err != nil {
		return err
	}
	if opts.wrap > 0 {
		for _, line := range textseq.Lines(v, textseq.FirstFit(v, opts.wrap)) {
			fmt.Fprintln(out, strings.TrimRight(line, " \n"))
		}
		return nil
	}
	return show(v, opts, out)
}

func edit[T any](v *chunkvec.Vector[T], opts options) error {
	for _, i := range opts.remove {
		if _, err := v.Remove(i); err != nil {
			return err
		}
	}
	for _, i := range opts.swapRemove {
		if _, err := v.SwapRemove(i); err != nil {
			return err
		}
	}
	if opts.truncate >= 0 {
		v.Truncate(opts.truncate)
	}
	return v.Check()
}

func show[T any](v *chunkvec.Vector[T], opts options, out io.Writer) error {
	if opts.dot {
		chunkvec.Vec2Dot(v, out)
		return nil
	}
	return v.Dump(out)
}

func printHelp(flagSet *pflag.FlagSet, out io.Writer) {
	fmt.Fprintf(out, `vecdump reads standard input into a chunked vector and prints its layout.

Usage:
  vecdump [flags] < input

Examples:
  # Lines in chunks of 4, as Graphviz
  vecdump --chunk-size 4 --dot < file.txt | dot -Tsvg > chunks.svg

  # Remove the first two lines, then fill index 5 from the back
  vecdump --remove 0,0 --swap-remove 5 < file.txt

  # Blocks of 16 bytes of a file
  vecdump --file notes.txt --block-size 16

  # Wrap text at 40 columns
  vecdump --fragments --wrap 40 < file.txt

Flags:
`)
	fmt.Fprint(out, flagSet.FlagUsages())
}

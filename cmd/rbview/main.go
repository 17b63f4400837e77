// Command rbview loads keys from a file into an ordered set and prints the
// shape of the underlying red-black tree.
//
//	rbview [-multi] [-numeric] [-format console|dot|html] [-trace level] keyfile
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/rbset"
	"github.com/npillmayer/rbset/compare"
	"github.com/npillmayer/rbset/keyfile"
	"github.com/npillmayer/rbset/rbtree"
	"github.com/npillmayer/rbset/treeview"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	multi   bool
	numeric bool
	format  string
	trace   string
}

// run executes the CLI and returns an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("rbview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.multi, "multi", false, "keep duplicate keys (multiset)")
	fs.BoolVar(&opts.numeric, "numeric", false, "parse keys as integers")
	fs.StringVar(&opts.format, "format", "console", "output format: console, dot or html")
	fs.StringVar(&opts.trace, "trace", "error", "trace level: debug, info or error")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: rbview [flags] keyfile")
		fs.PrintDefaults()
		return 2
	}
	gtrace.CoreTracer = gologadapter.New()
	if !setTraceLevel(opts.trace, gtrace.CoreTracer, tracing.Select("rbset")) {
		fmt.Fprintf(stderr, "unknown trace level: %s\n", opts.trace)
		return 2
	}
	//
	name := fs.Arg(0)
	var err error
	if opts.numeric {
		err = loadAndShow(name, strconv.Atoi, strconv.Itoa, compare.Less[int], opts, stdout, stderr)
	} else {
		err = loadAndShow(name, asString, asLabel, compare.Less[string], opts, stdout, stderr)
	}
	if err != nil {
		fmt.Fprintf(stderr, "rbview: %v\n", err)
		return 1
	}
	return 0
}

func setTraceLevel(level string, tracers ...tracing.Trace) bool {
	for _, tr := range tracers {
		switch level {
		case "debug":
			tr.SetTraceLevel(tracing.LevelDebug)
		case "info":
			tr.SetTraceLevel(tracing.LevelInfo)
		case "error":
			tr.SetTraceLevel(tracing.LevelError)
		default:
			return false
		}
	}
	return true
}

func asString(s string) (string, error) { return s, nil }

func asLabel(s string) string { return s }

// container is the part of Set and Multiset rbview needs.
type container[T any] interface {
	Tree() *rbtree.Tree[T, T]
	Len() int
}

func loadAndShow[T any](name string, parse func(string) (T, error), label func(T) string,
	less func(a, b T) bool, opts options, stdout, stderr io.Writer) error {
	//
	var c container[T]
	var insert func(T)
	if opts.multi {
		m, err := rbset.NewMultisetFunc(less)
		if err != nil {
			return err
		}
		c, insert = m, func(v T) { m.Insert(v) }
	} else {
		s, err := rbset.NewFunc(less)
		if err != nil {
			return err
		}
		c, insert = s, func(v T) { s.Insert(v) }
	}
	if _, err := keyfile.Load(name, parse, insert); err != nil {
		return err
	}
	tree := c.Tree()
	if err := tree.Check(); err != nil {
		return err
	}
	var err error
	switch opts.format {
	case "console":
		err = treeview.Fprint(stdout, tree.Shape(), label, nil)
	case "dot":
		err = treeview.Dot(stdout, tree.Shape(), label)
	case "html":
		err = treeview.HTML(stdout, tree.Shape(), label)
	default:
		return fmt.Errorf("unknown output format: %s", opts.format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "%d keys: %s\n", c.Len(), tree.Stats())
	return nil
}

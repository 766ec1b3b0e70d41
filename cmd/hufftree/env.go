package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/internal/logger"
)

var errUsage = errors.New("invalid usage")

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitCorrupt = 3
)

// exitCode maps an error to the process exit status: 2 for usage errors,
// 3 for corrupt or inconsistent inputs, 1 for everything else.
func exitCode(err error) int {
	var (
		buildErr     *hufftree.BuildError
		truncErr     *hufftree.TruncatedStreamError
		unknownErr   *hufftree.UnknownSymbolError
		malformedErr *hufftree.MalformedTreeError
		invalidErr   *hufftree.InvalidCodeError
		syntaxErr    *hufftree.SyntaxError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return exitUsage
	case errors.As(err, &buildErr),
		errors.As(err, &truncErr),
		errors.As(err, &unknownErr),
		errors.As(err, &malformedErr),
		errors.As(err, &invalidErr),
		errors.As(err, &syntaxErr):
		return exitCorrupt
	default:
		return exitFailure
	}
}

type environ struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// options holds the flags shared by every subcommand.
type options struct {
	output  string
	format  string
	verbose bool
}

func (env *environ) flagSet(name string, opts *options, withFormat bool) *flag.FlagSet {
	fs := flag.NewFlagSet("hufftree "+name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	fs.StringVar(&opts.output, "o", "-", `output path ("-" for stdout)`)
	fs.BoolVar(&opts.verbose, "v", false, "log debugging output")
	if withFormat {
		fs.StringVar(&opts.format, "format", formatText, `payload format: "text" ('0'/'1' characters) or "packed" (binary)`)
	}
	return fs
}

func (env *environ) logger(opts *options) logger.Logger {
	return logger.New(env.stderr, opts.verbose)
}

// parse parses args and checks the positional argument count.
func parse(fs *flag.FlagSet, args []string, numArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != numArgs {
		fs.Usage()
		return nil, fmt.Errorf("%s: expected %d arguments, got %d: %w", fs.Name(), numArgs, fs.NArg(), errUsage)
	}
	return fs.Args(), nil
}

// readInput reads the whole of path, or stdin if path is "-".
func (env *environ) readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(env.stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path, or stdout if path is "-".
func (env *environ) writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := env.stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o666)
}

func (env *environ) readTree(path string) (*hufftree.Tree, error) {
	raw, err := env.readInput(path)
	if err != nil {
		return nil, err
	}
	var t hufftree.Tree
	if err := t.UnmarshalText(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &t, nil
}

func dumpTo(log logger.Logger, dumper interface {
	Dump(io.Writer) (int64, error)
}) {
	if !log.DebugEnabled() {
		return
	}
	var buf bytes.Buffer
	_, _ = dumper.Dump(&buf)
	log.Debugf("%s", buf.String())
}

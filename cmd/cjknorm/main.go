/*
Command cjknorm normalizes text files which mix Chinese and English.

	cjknorm [flags] [files...]

cjknorm reads the given files, or standard input if no file is given, and
writes the normalized lines to standard output. Lines are normalized in
parallel.
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/npillmayer/cjknorm"
	"github.com/npillmayer/cjknorm/lang"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type options struct {
	window      int
	maxRounds   int
	language    string
	envFallback bool
	trace       string
	jobs        int
}

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "cjknorm [files...]",
		Short: "normalize spacing and punctuation of mixed Chinese/English text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupTracing(opts.trace); err != nil {
				return err
			}
			nz, err := opts.normalizer()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), args, nz, opts.jobs)
		},
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.window, "window", lang.DefaultWindow, "number of letters at each end of a line used to guess its language")
	flags.IntVar(&opts.maxRounds, "max-rounds", cjknorm.DefaultMaxRounds, "maximum number of normalization rounds per line")
	flags.StringVar(&opts.language, "lang", "auto", "language of the text: zh, en or auto")
	flags.BoolVar(&opts.envFallback, "env-fallback", false, "use the locale of the environment for lines without letters")
	flags.StringVar(&opts.trace, "trace", "error", "trace level: debug, info or error")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of lines to normalize in parallel")
	return cmd
}

var traceLevels = map[string]tracing.TraceLevel{
	"debug": tracing.LevelDebug,
	"info":  tracing.LevelInfo,
	"error": tracing.LevelError,
}

func setupTracing(level string) error {
	l, ok := traceLevels[strings.ToLower(level)]
	if !ok {
		return fmt.Errorf("unknown trace level %q", level)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	return nil
}

func (opts options) normalizer() (*cjknorm.Normalizer, error) {
	if opts.jobs < 1 {
		return nil, fmt.Errorf("number of jobs must be positive, is %d", opts.jobs)
	}
	nzopts := []cjknorm.Option{
		cjknorm.WithWindow(opts.window),
		cjknorm.WithMaxRounds(opts.maxRounds),
	}
	if opts.language != "auto" {
		l, ok := lang.Parse(opts.language)
		if !ok {
			return nil, fmt.Errorf("unsupported language %q", opts.language)
		}
		nzopts = append(nzopts, cjknorm.WithLanguage(l))
	}
	if opts.envFallback {
		nzopts = append(nzopts, cjknorm.WithFallback(lang.FromEnvironment()))
	}
	return cjknorm.New(nzopts...), nil
}

// run normalizes the lines of all files, or of stdin if files is empty, and
// writes them to out.
func run(ctx context.Context, stdin io.Reader, out io.Writer, files []string, nz *cjknorm.Normalizer, jobs int) error {
	var lines []string
	var err error
	if len(files) == 0 {
		if lines, err = readLines(stdin, lines); err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
	}
	for _, name := range files {
		if lines, err = readFile(name, lines); err != nil {
			return err
		}
	}
	if err = normalizeLines(ctx, nz, lines, jobs); err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func readFile(name string, lines []string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return lines, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	if lines, err = readLines(f, lines); err != nil {
		return lines, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines, nil
}

const maxLineLength = 1 << 20

func readLines(r io.Reader, lines []string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// normalizeLines normalizes lines in place, using at most jobs goroutines.
func normalizeLines(ctx context.Context, nz *cjknorm.Normalizer, lines []string, jobs int) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i := range lines {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines[i] = nz.NormalizeLine(lines[i])
			return nil
		})
	}
	return eg.Wait()
}

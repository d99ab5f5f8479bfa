// Command linecount counts logical lines in annotated text files: comments
// stripped, blank lines skipped, and backslash continuations joined. It is a
// small demonstration of the textio, stopwatch, and numfmt packages.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nessan/utilities/log"
	"github.com/nessan/utilities/numfmt"
	"github.com/nessan/utilities/stopwatch"
	"github.com/nessan/utilities/textio"
	"github.com/nessan/utilities/zap"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		markers  string
		raw      bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "linecount FILE...",
		Short: "Count logical lines in annotated text files",
		Long: "linecount counts logical lines: trailing comments are stripped,\n" +
			"blank and comment-only lines are skipped, and lines ending in a\n" +
			"backslash are joined to the next. With --raw, every physical line\n" +
			"counts, blanks included.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _, err := zap.New(zap.Config{
				Environment:     zap.EnvironmentLocal,
				Level:           logLevel,
				OTelLibraryName: "linecount",
			})
			if err != nil {
				return err
			}

			if raw {
				markers = ""
			}

			return run(cmd.Context(), logger, args, markers)
		},
	}

	cmd.Flags().StringVarP(&markers, "marker", "m", textio.DefaultMarkers,
		"comment marker character set")
	cmd.Flags().BoolVar(&raw, "raw", false,
		"count raw physical lines, including blanks and comments")
	cmd.Flags().StringVarP(&logLevel, "verbosity", "v", "warn", "logging verbosity")

	return cmd
}

func run(ctx context.Context, logger log.Logger, paths []string, markers string) error {
	logger = logger.With(log.String("run_id", uuid.NewString()))
	watch := stopwatch.New("total")
	total := int64(0)

	for _, path := range paths {
		count, err := countFile(path, markers)
		if err != nil {
			logger.Log(ctx, log.LevelError, "count failed",
				log.String("file", path), log.Err(err))

			return err
		}

		logger.Log(ctx, log.LevelDebug, "counted file",
			log.String("file", path),
			log.Int("lines", count),
			log.Float("elapsed_s", watch.Click()))

		fmt.Printf("%8s  %s\n", numfmt.GroupInt(int64(count), numfmt.DefaultOptions), path)

		total += int64(count)
	}

	if len(paths) > 1 {
		fmt.Printf("%8s  total\n", numfmt.GroupInt(total, numfmt.DefaultOptions))
	}

	logger.Log(ctx, log.LevelInfo, "done",
		log.String("elapsed", watch.String()),
		log.Any("files", len(paths)))

	return nil
}

func countFile(path, markers string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer file.Close()

	return textio.CountLines(file, markers)
}

package cli

import (
	"bufio"
	"bytes"
	"fmt"

	"autocomplete-srv/pkg/query"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single NDJSON request.
const maxLineSize = 1 << 20

// BatchOptions holds flags of the batch command.
type BatchOptions struct {
	Workers int
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{}

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Render queries for newline-delimited clean requests",
		Long: `Read clean requests as NDJSON (one JSON object per line) and print one
query per line, in input order. Requests are rendered concurrently
against the same layout. Blank lines are skipped.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			if !cmd.Flags().Changed("workers") {
				opts.Workers = rootOpts.cfg.CLI.Workers
			}
			return runBatch(rootOpts, opts, arg, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "concurrent renders (default: cli.workers)")

	return cmd
}

func runBatch(rootOpts *RootOptions, opts *BatchOptions, arg string, cmd *cobra.Command) error {
	if opts.Workers <= 0 {
		return fmt.Errorf("invalid workers %d: must be greater than 0", opts.Workers)
	}

	in, err := openInput(cmd.InOrStdin(), arg)
	if err != nil {
		return err
	}
	defer in.Close()

	var lines [][]byte
	var lineNos []int
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, bytes.Clone(line))
		lineNos = append(lineNos, n)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	results := make([][]byte, len(lines))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(opts.Workers)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			clean, err := decodeRequest(line, "json")
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNos[i], err)
			}
			q, err := rootOpts.uc.GenerateQuery(ctx, clean)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNos[i], err)
			}
			b, err := query.Marshal(q)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNos[i], err)
			}
			results[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	rootOpts.logger.Debugf(ctx, "cli.batch: rendered %d requests with %d workers", len(results), opts.Workers)

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, b := range results {
		w.Write(b)
		w.WriteByte('\n')
	}
	return w.Flush()
}

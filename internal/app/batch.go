package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/blackwell-systems/pathjoin/internal/batch"
	"github.com/spf13/cobra"
)

var (
	batchDelimiter string
	batchWorkers   int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Join one record per stdin line",
	Long: `Read records from stdin, one per line, split each line into segments on the
delimiter (tab by default) and print one joined path per line in input order.

Examples:
  printf '/api/\tusers\n/static/\t/img/\n' | pathjoin batch
  cat routes.csv | pathjoin batch --delimiter , --workers 8
  pathjoin batch --delimiter '\t' < records.tsv   # escapes are understood
  pathjoin batch --json < records.tsv`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchDelimiter, "delimiter", "", "Segment delimiter within a line; Go escapes such as \\t are accepted (default from config, tab)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Number of concurrent workers (default from config)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	delim := cfg.Batch.Delimiter
	if batchDelimiter != "" {
		delim = parseDelimiter(batchDelimiter)
	}
	workers := cfg.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	records, err := batch.Parse(cmd.InOrStdin(), delim)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	results, err := batch.Run(cmd.Context(), records, workers)
	if err != nil {
		return fmt.Errorf("joining records: %w", err)
	}
	verbosef(cmd, "joined %d records with %d workers", len(results), workers)

	if flagJSON {
		if results == nil {
			results = []batch.Result{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		return enc.Encode(results)
	}

	bw := bufio.NewWriter(cmd.OutOrStdout())
	for _, r := range results {
		if _, err := fmt.Fprintln(bw, r.Path); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// parseDelimiter expands Go escape sequences so a shell can pass a tab as
// `\t`. Input that does not unquote cleanly is used as given.
func parseDelimiter(s string) string {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil && u != "" {
		return u
	}
	return s
}

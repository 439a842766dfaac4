package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/blackwell-systems/pathjoin/internal/output"
	"github.com/blackwell-systems/pathjoin/internal/pathjoin"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [segment...]",
	Short: "Show how each segment is stripped",
	Long: `Print a table with every segment before and after its boundary slashes are
stripped, followed by the joined path. Altered segments are highlighted.

Example:
  pathjoin explain /a/ "" b//`,
	Args: cobra.ArbitraryArgs,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

type explainOutput struct {
	Path     string                  `json:"path"`
	Segments []pathjoin.SegmentTrace `json:"segments"`
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	traces := pathjoin.Explain(args...)
	joined := pathjoin.Join(args...)

	w := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(explainOutput{Path: joined, Segments: traces})
	}

	tbl := output.NewTable("#", "Raw", "Stripped")
	for _, tr := range traces {
		stripped := strconv.Quote(tr.Stripped)
		if tr.Stripped != tr.Raw {
			stripped = output.StyleWarning.Render(stripped)
		}
		tbl.AddRow(output.StyleBold.Render(strconv.Itoa(tr.Index)), strconv.Quote(tr.Raw), stripped)
	}

	fmt.Fprintln(w, output.Section("Segments", cfg.Output.Width-2))
	if err := tbl.Fprint(w); err != nil {
		return err
	}
	fmt.Fprintln(w, output.Section("Result", cfg.Output.Width-2))
	_, err = fmt.Fprintln(w, " "+output.StyleSuccess.Render(strconv.Quote(joined)))
	return err
}

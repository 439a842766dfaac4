package app

import (
	"encoding/json"
	"fmt"

	"github.com/blackwell-systems/pathjoin/internal/pathjoin"
	"github.com/spf13/cobra"
)

var joinBase string

var joinCmd = &cobra.Command{
	Use:   "join [segment...]",
	Short: "Join segments given as arguments",
	Long: `Join the given segments with '/', stripping leading and trailing slashes
of each one. With no segments the result is an empty line.

Examples:
  pathjoin join /api/ /v1/ users        # api/v1/users
  pathjoin join a/ "" /b                # a//b
  pathjoin join --base api users 42     # base path from config.yaml
  pathjoin join -- -weird- segment`,
	Args: cobra.ArbitraryArgs,
	RunE: runJoin,
}

func init() {
	joinCmd.Flags().StringVar(&joinBase, "base", "", "Name of a configured base path to prepend")
	rootCmd.AddCommand(joinCmd)
}

func runJoin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var joined string
	if joinBase != "" {
		base, err := cfg.Base(joinBase)
		if err != nil {
			return err
		}
		verbosef(cmd, "base %s = %q", joinBase, base)
		joined = pathjoin.JoinBase(base, args...)
	} else {
		joined = pathjoin.Join(args...)
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(map[string]string{"path": joined})
	}
	_, err = fmt.Fprintln(w, joined)
	return err
}

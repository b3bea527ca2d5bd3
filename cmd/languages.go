package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/zhubert/healthchat/internal/locale"
)

var languagesJSON bool

var languagesCmd = &cobra.Command{
	Use:   "languages [query]",
	Short: "List the languages Health Chat can be used in",
	Long: `Lists the language catalog in picker order. An optional query filters the
list the same way the search box on the welcome screen does.

The code in the first column is what --lang accepts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		return listLanguages(cmd.OutOrStdout(), locale.DefaultCatalog(), query)
	},
}

func init() {
	languagesCmd.Flags().BoolVar(&languagesJSON, "json", false, "Print the matching languages as JSON")
	rootCmd.AddCommand(languagesCmd)
}

func listLanguages(out io.Writer, catalog *locale.Catalog, query string) error {
	langs := catalog.Filter(query)

	if languagesJSON {
		data, err := json.MarshalIndent(langs, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding languages: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(langs) == 0 {
		fmt.Fprintf(out, "No languages match %q.\n", query)
		return nil
	}

	// Native names mix scripts, so pad by display width rather than bytes
	width := 0
	for _, l := range langs {
		width = max(width, runewidth.StringWidth(l.Label()))
	}
	for _, l := range langs {
		label := l.Label()
		pad := strings.Repeat(" ", width-runewidth.StringWidth(label))
		fmt.Fprintf(out, "%-4s %s%s  %s\n", l.Code, label, pad, l.Direction)
	}
	return nil
}

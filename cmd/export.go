package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/kcal/internal/cli"
	"github.com/theirongolddev/kcal/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagOutput  string
	flagReplace bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the ledger as JSON",
	Long:  "Write the whole ledger as JSON, in the same shape it is stored in.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Load entries from an exported JSON ledger",
	Long: `Load entries from an exported JSON ledger ("-" reads stdin).
Entries are appended to the matching days unless --replace is given,
in which case the file becomes the whole ledger.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to FILE instead of stdout")
	importCmd.Flags().BoolVar(&flagReplace, "replace", false, "Replace the ledger instead of merging")
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	editor, done, err := openEditor()
	if err != nil {
		return err
	}
	defer done()

	ledger := editor.Snapshot()
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	data = append(data, '\n')

	if flagOutput == "" || flagOutput == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOutput, err)
	}
	fmt.Fprintf(os.Stderr, "  Exported %s entries across %d days to %s\n",
		cli.FormatNumber(int64(ledger.EntryCount())), len(ledger), flagOutput)
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	in, err := readLedgerFile(args[0])
	if err != nil {
		return err
	}

	editor, done, err := openEditor()
	if err != nil {
		return err
	}
	defer done()

	n, err := editor.Import(in, flagReplace)
	if err != nil {
		return err
	}

	verb := "Merged"
	if flagReplace {
		verb = "Replaced ledger with"
	}
	say("%s\n", cli.RenderStatus(fmt.Sprintf("%s %s entries from %s", verb, cli.FormatNumber(int64(n)), args[0]), true))
	return nil
}

// readLedgerFile decodes an exported ledger from path, or stdin for "-".
func readLedgerFile(path string) (model.Ledger, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var l model.Ledger
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if l == nil {
		l = model.NewLedger()
	}
	return l, nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fpio "github.com/matzehuels/facetplot/pkg/io"
)

// reshapeCommand creates the reshape command, which writes the tidy long
// table instead of a figure.
func (c *CLI) reshapeCommand() *cobra.Command {
	var (
		f         inputFlags
		output    string
		catName   string
		valueName string
	)

	cmd := &cobra.Command{
		Use:   "reshape <input-file>",
		Short: "Write the tidy long form of a wide table as TSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(logger)
			tidy, err := runner.Reshape(cmd.Context(), opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Reshaped %d rows", tidy.Len()))

			exp := fpio.ExportOptions{CategoryName: catName, ValueName: valueName}
			if output == "" {
				return fpio.WriteTidy(tidy, c.out, exp)
			}
			if err := fpio.ExportTidy(tidy, output, exp); err != nil {
				return err
			}
			printSuccess("Wrote %d rows", tidy.Len())
			printFile(output)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output TSV (default: stdout)")
	cmd.Flags().StringVar(&catName, "category-name", "", "name of the category column (default: Sample)")
	cmd.Flags().StringVar(&valueName, "value-name", "", "name of the value column (default: Value)")

	return cmd
}

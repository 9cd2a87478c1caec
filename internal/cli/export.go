package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drafterhq/drafter/pkg/convert"
	"github.com/drafterhq/drafter/pkg/shape"
)

// exportCommand converts a native JSON drawing into a DXF file.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <drawing.json>",
		Short: "Convert a native JSON drawing to DXF",
		Long: `Convert a drawing saved in the native JSON format to DXF.

Line and circle shapes become LINE and CIRCLE entities, in drawing order.
Shapes of other types, and shapes missing required fields, are skipped.

Examples:
  drafter export plan.json                # writes plan.dxf
  drafter export plan.json -o out/plan.dxf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			out := output
			if out == "" {
				out = strings.TrimSuffix(input, filepath.Ext(input)) + ".dxf"
			}
			return c.runExport(input, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output DXF path (default: input with .dxf extension)")
	return cmd
}

func (c *CLI) runExport(input, output string) error {
	p := newProgress(c.Logger)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read drawing: %w", err)
	}

	shapes, err := shape.Decode(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}
	c.Logger.Debug("parsed drawing", "path", input, "shapes", len(shapes))

	doc := convert.ToDocument(shapes)
	if err := doc.Save(output); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	p.done(fmt.Sprintf("Exported %d entities", len(doc.Entities)))
	printSuccess("Exported %d of %d shapes to %s", len(doc.Entities), len(shapes), output)
	if skipped := len(shapes) - len(doc.Entities); skipped > 0 {
		printWarning("%d shapes have no DXF mapping and were skipped", skipped)
	}
	return nil
}

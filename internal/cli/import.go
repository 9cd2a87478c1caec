package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/drafterhq/drafter/pkg/convert"
	"github.com/drafterhq/drafter/pkg/dxf"
	"github.com/drafterhq/drafter/pkg/shape"
)

// importCommand converts a DXF file into a native JSON drawing.
func (c *CLI) importCommand() *cobra.Command {
	var (
		output string
		pretty bool
	)

	cfg, err := loadUserConfig()
	if err != nil {
		c.Logger.Warn("ignoring config file", "err", err)
	}

	cmd := &cobra.Command{
		Use:   "import <file.dxf>",
		Short: "Convert a DXF file to the native JSON format",
		Long: `Convert a DXF file to the native JSON drawing format.

LINE and CIRCLE entities become line and circle shapes, in file order.
Other entity kinds are skipped; their count is reported.

Examples:
  drafter import plan.dxf                 # writes plan.json
  drafter import plan.dxf -o drawing.json
  drafter import plan.dxf --stdout        # print JSON instead of writing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			out := output
			if out == "" {
				out = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
			}
			useStdout, _ := cmd.Flags().GetBool("stdout")
			return c.runImport(input, out, useStdout, pretty)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output JSON path (default: input with .json extension)")
	cmd.Flags().Bool("stdout", false, "print the JSON to stdout instead of writing a file")
	cmd.Flags().BoolVar(&pretty, "pretty", cfg.Pretty, "indent the JSON output")
	return cmd
}

func (c *CLI) runImport(input, output string, useStdout, pretty bool) error {
	p := newProgress(c.Logger)

	doc, err := dxf.Open(input)
	if err != nil {
		return fmt.Errorf("read dxf: %w", err)
	}
	c.Logger.Debug("parsed dxf", "path", input, "entities", len(doc.Entities))

	shapes := convert.FromDocument(doc)

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(shapes, "", "  ")
	} else {
		data, err = shape.Encode(shapes)
	}
	if err != nil {
		return fmt.Errorf("serialize shapes: %w", err)
	}

	if useStdout {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	p.done(fmt.Sprintf("Imported %d shapes", len(shapes)))
	printSuccess("Imported %d of %d entities to %s", len(shapes), len(doc.Entities), output)
	if skipped := len(doc.Entities) - len(shapes); skipped > 0 {
		printWarning("%d unsupported entities were skipped", skipped)
	}
	return nil
}

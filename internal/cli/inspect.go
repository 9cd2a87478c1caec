package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drafterhq/drafter/pkg/dxf"
	"github.com/drafterhq/drafter/pkg/shape"
)

// inspectCommand summarizes the contents of a drawing or DXF file.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize the contents of a drawing or DXF file",
		Long: `Summarize a drawing file without converting it.

The file type is detected from the extension: .dxf files are parsed as
DXF and everything else as the native JSON format. The summary lists
primitive counts by type and flags content a conversion would skip.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if strings.EqualFold(filepath.Ext(path), ".dxf") {
				return inspectDXF(path)
			}
			return inspectDrawing(path)
		},
	}
	return cmd
}

func inspectDXF(path string) error {
	doc, err := dxf.Open(path)
	if err != nil {
		return fmt.Errorf("read dxf: %w", err)
	}

	counts := map[string]int{}
	unsupported := 0
	for _, e := range doc.Entities {
		counts[e.Type()]++
		if _, ok := e.(*dxf.Raw); ok {
			unsupported++
		}
	}

	fmt.Println(StyleTitle.Render(path))
	printInfo("DXF document, %d entities", len(doc.Entities))
	for _, name := range sortedKeys(counts) {
		printCount(name, counts[name])
	}
	if unsupported > 0 {
		printWarning("%d entities would be skipped on import", unsupported)
	}
	return nil
}

func inspectDrawing(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read drawing: %w", err)
	}
	shapes, err := shape.Decode(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	counts := map[string]int{}
	incomplete := 0
	for _, s := range shapes {
		counts[s.Type]++
		if !s.Complete() {
			incomplete++
		}
	}

	fmt.Println(StyleTitle.Render(path))
	printInfo("Native drawing, %d shapes", len(shapes))
	for _, name := range sortedKeys(counts) {
		printCount(name, counts[name])
	}
	if incomplete > 0 {
		printWarning("%d shapes would be skipped on DXF export", incomplete)
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

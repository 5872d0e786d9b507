package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"layerdoc/internal/config"
	"layerdoc/internal/doc"
	"layerdoc/internal/manifest"
	"layerdoc/pkg/logging"
)

var (
	exportOutputDir string
	exportQuiet     bool
)

// newExportCmd creates the Cobra command that exports HTML documentation
// for one or more layer manifests.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <manifest>...",
		Short: "Export HTML documentation for layer manifests",
		Long: `Reads each Vulkan layer JSON manifest, builds its settings
documentation and writes <layer key>.html into the output directory.
Multiple manifests are exported concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutputDir, "output", "o", "", "Output directory (default from config, else \".\")")
	cmd.Flags().BoolVarP(&exportQuiet, "quiet", "q", false, "Suppress progress output")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(config.GetDefaultConfigPathOrPanic())
	if err != nil {
		return err
	}

	outputDir := exportOutputDir
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}

	var s *spinner.Spinner
	if !exportQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Exporting %d manifest(s)...", len(args))
		s.Start()
		defer s.Stop()
	}

	group, ctx := errgroup.WithContext(cmd.Context())
	results := make([]string, len(args))

	for i, manifestPath := range args {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			l, err := manifest.Load(manifestPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", manifestPath, err)
			}

			outputPath := filepath.Join(outputDir, l.Key+".html")
			generator := doc.NewGenerator()
			if err := generator.Export(l, outputPath); err != nil {
				return err
			}

			for _, diagnostic := range generator.Diagnostics() {
				logging.Warn("Export", "%s: %s", manifestPath, diagnostic)
			}
			results[i] = outputPath
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if s != nil {
		s.Stop()
	}
	if !exportQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported:\n  %s\n", strings.Join(results, "\n  "))
	}
	return nil
}

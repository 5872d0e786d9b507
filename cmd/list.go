package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"layerdoc/internal/config"
	"layerdoc/internal/formatting"
	"layerdoc/internal/manifest"
)

var (
	listOutputFormat string
	listQuiet        bool
	listNoColor      bool
)

// newListCmd creates the Cobra command that prints a layer's settings
// overview to the terminal.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <manifest>",
		Short: "List the settings a layer manifest declares",
		Long: `Reads a Vulkan layer JSON manifest and prints its settings
overview: variable names, types, defaults and environment overrides.`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listOutputFormat, "output", "f", "", "Output format: console, json, yaml, table (default from config)")
	cmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Suppress decorative output")
	cmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(config.GetDefaultConfigPathOrPanic())
	if err != nil {
		return err
	}

	format := listOutputFormat
	if format == "" {
		format = cfg.List.Format
	}

	l, err := manifest.Load(args[0])
	if err != nil {
		return err
	}

	formatter := formatting.NewFactory().CreateFormatter(formatting.Options{
		Format: formatting.OutputFormat(format),
		Quiet:  listQuiet,
		Color:  !listNoColor,
	})

	out, err := formatter.FormatLayer(l)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

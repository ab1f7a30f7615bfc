package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/honeybbq/serviceast/internal/document"
	"github.com/honeybbq/serviceast/pkg/serviceast"
)

var (
	renderInputs      []string
	renderOutput      string
	renderIndent      string
	renderEmptyAnnots bool
	renderNodeIDs     bool
	renderTag         string

	parseInput  string
	parseOutput string
	parsePretty bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render service documents through a backend",
	Long: `Render one or more service documents. Several -i inputs are layered in
order: objects merge recursively and list items are matched by the configured
identifiers (name, key, path).`,
	RunE: runRender,
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse native sources back into a service document",
	RunE:  runParse,
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available backends",
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry := buildRegistry()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Supported backends:")
		for _, name := range backendNames(registry) {
			marker := " "
			if cfg != nil && cfg.Backend == name {
				marker = "*"
			}
			fmt.Fprintf(out, " %s %-10s %s\n", marker, name, registry[name].description)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringSliceVarP(&renderInputs, "input", "i", nil, "input documents, layered in order (default: stdin)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file or directory (default: stdout)")
	renderCmd.Flags().StringVar(&renderIndent, "indent", serviceast.DefaultIndent, "indent unit")
	renderCmd.Flags().BoolVar(&renderEmptyAnnots, "include-empty-annotations", false, "render empty service annotations")
	renderCmd.Flags().BoolVar(&renderNodeIDs, "include-ids", false, "include node ids where the format allows")
	renderCmd.Flags().StringVar(&renderTag, "tag", "", "generation tag written as a header comment")

	parseCmd.Flags().StringVarP(&parseInput, "input", "i", "", "input source (default: stdin)")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output path (default: stdout)")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", true, "pretty print JSON")

	rootCmd.AddCommand(renderCmd, parseCmd, backendsCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	backend, err := lookupBackend(cfg.Backend)
	if err != nil {
		return err
	}

	logger.Debugf("loading %d input(s)", len(renderInputs))
	msg, err := document.Load(cmd.InOrStdin(), renderInputs, cfg.Merge.Identifiers)
	if err != nil {
		return err
	}

	opts := renderOptions(cmd)
	logger.Debugf("rendering with %s: %+v", backend.Name(), opts)
	bundle, err := backend.ToNative(cmd.Context(), msg, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logger.Debugf("bundle %s/%s: %d source(s) %v", bundle.Metadata.Backend, bundle.Metadata.Format, len(bundle.Sources), bundle.Metadata.Custom)

	if renderOutput == "" || renderOutput == document.Stdin {
		return writeBundle(cmd.OutOrStdout(), bundle)
	}
	return writeBundleToFiles(renderOutput, bundle)
}

// renderOptions starts from the config file and applies explicitly set flags.
func renderOptions(cmd *cobra.Command) serviceast.RenderOptions {
	opts := cfg.RenderOptions()
	flags := cmd.Flags()
	if flags.Changed("indent") {
		opts.Indent = renderIndent
	}
	if flags.Changed("include-empty-annotations") {
		opts.IncludeEmptyAnnotations = renderEmptyAnnots
	}
	if flags.Changed("include-ids") {
		opts.IncludeNodeIDs = renderNodeIDs
	}
	if flags.Changed("tag") {
		opts.GenerationTag = renderTag
	}
	return opts
}

func runParse(cmd *cobra.Command, _ []string) error {
	backend, err := lookupBackend(cfg.Backend)
	if err != nil {
		return err
	}

	data, err := document.ReadInput(cmd.InOrStdin(), parseInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	name, origin := "main", "stdin"
	if parseInput != "" && parseInput != document.Stdin {
		name, origin = filepath.Base(parseInput), parseInput
	}
	bundle := serviceast.NewBundle("", backend.Name())
	bundle.Sources = append(bundle.Sources, serviceast.Source{Name: name, Content: data})

	opts := serviceast.ParseOptions{SourceMetadata: map[string]string{"path": origin}}
	msg, err := backend.ToDocument(cmd.Context(), bundle, opts)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	doc, err := document.Marshal(msg, parsePretty)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return writeOutput(cmd, parseOutput, doc)
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == document.Stdin {
		out := cmd.OutOrStdout()
		if _, err := out.Write(data); err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			_, err := fmt.Fprintln(out)
			return err
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

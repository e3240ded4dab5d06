package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/peermap/pkg/config"
	perrors "github.com/matzehuels/peermap/pkg/errors"
	"github.com/matzehuels/peermap/pkg/pipeline"
)

// reportOpts holds the command-line flags for the report command.
type reportOpts struct {
	peeringFile string   // peering connection export
	vpcFile     string   // VPC inventory export, for VPC names
	accountFile string   // account id to name mapping (JSON or YAML)
	accounts    []string // account id filter; repeatable, comma-separated
	regions     []string // region filter; repeatable, comma-separated
	output      string   // output file (single format) or base path (multiple)
	formats     []string // output formats: html, json, dot, svg
	title       string   // page title
	height      string   // network canvas height (CSS length)
	configFile  string   // TOML config file
}

// writtenFile records an artifact written to disk.
type writtenFile struct {
	path string
	size int
}

// reportCommand creates the command that generates the peering report.
//
// Default settings:
//   - inputs: vpc_peering_data.json, vpc_data.json, account_data.json
//   - output: vpc_peering_visualization.html
//   - format: html
func (c *CLI) reportCommand() *cobra.Command {
	opts := reportOpts{
		peeringFile: pipeline.DefaultPeeringFile,
		vpcFile:     pipeline.DefaultVPCFile,
		accountFile: pipeline.DefaultAccountFile,
		output:      pipeline.DefaultOutput,
	}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "peermap visualizes AWS VPC peering connections",
		Long: `peermap reads AWS Config exports of VPC peering connections and renders
them as an interactive network of VPCs, colored by account.

Optional VPC inventory and account exports replace raw ids with names.
Settings can be kept in a peermap.toml file; flags override file values.`,
		Example: `  peermap
  peermap --accounts 111111111111,222222222222 --regions us-east-1
  peermap -f html,json,svg -o reports/peering.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Find(opts.configFile)
			if err != nil {
				return err
			}
			applyConfig(cmd.Flags(), &opts, cfg)
			return c.runReport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.accounts, "accounts", nil, "only include connections of these account ids (comma-separated, repeatable)")
	cmd.Flags().StringArrayVar(&opts.regions, "regions", nil, "only include connections touching these regions (comma-separated, repeatable)")
	cmd.Flags().StringVar(&opts.peeringFile, "peering-file", opts.peeringFile, "VPC peering connection export")
	cmd.Flags().StringVar(&opts.vpcFile, "vpc-file", opts.vpcFile, "VPC inventory export used for VPC names")
	cmd.Flags().StringVar(&opts.accountFile, "account-file", opts.accountFile, "account names (JSON, or YAML with .yaml/.yml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file (single format) or base path (multiple)")
	cmd.Flags().StringArrayVarP(&opts.formats, "format", "f", nil, "output format(s): html (default), json, dot, svg (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title")
	cmd.Flags().StringVar(&opts.height, "height", "", "network height as a CSS length (default 1300px)")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "TOML config file (default ./"+config.DefaultFile+" if present)")

	return cmd
}

// applyConfig fills options from cfg for every flag not set explicitly.
func applyConfig(flags *pflag.FlagSet, opts *reportOpts, cfg config.Config) {
	setString := func(name string, dst *string, v string) {
		if v != "" && !flags.Changed(name) {
			*dst = v
		}
	}
	setList := func(name string, dst *[]string, v []string) {
		if len(v) > 0 && !flags.Changed(name) {
			*dst = v
		}
	}

	setString("peering-file", &opts.peeringFile, cfg.Inputs.Peering)
	setString("vpc-file", &opts.vpcFile, cfg.Inputs.VPCs)
	setString("account-file", &opts.accountFile, cfg.Inputs.Accounts)
	setList("accounts", &opts.accounts, cfg.Filter.Accounts)
	setList("regions", &opts.regions, cfg.Filter.Regions)
	setString("output", &opts.output, cfg.Output.Path)
	setList("format", &opts.formats, cfg.Output.Formats)
	setString("title", &opts.title, cfg.Output.Title)
	setString("height", &opts.height, cfg.Output.Height)
}

// runReport executes the pipeline and writes one file per format.
func (c *CLI) runReport(ctx context.Context, opts reportOpts) error {
	logger := loggerFromContext(ctx)

	if err := perrors.ValidateOutputPath(opts.output); err != nil {
		return err
	}

	popts := pipeline.Options{
		PeeringFile: opts.peeringFile,
		VPCFile:     opts.vpcFile,
		AccountFile: opts.accountFile,
		Accounts:    opts.accounts,
		Regions:     opts.regions,
		Formats:     opts.formats,
		Title:       opts.title,
		Height:      opts.height,
		Logger:      logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	res, err := pipeline.NewRunner(logger).Execute(ctx, popts)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	files, err := writeArtifacts(res.Artifacts, popts.Formats, opts.output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d report file(s)", len(files)))

	printSummary(c.Out, res, files)
	return nil
}

// writeArtifacts writes each format to its output path, creating parent
// directories as needed. Files are returned in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]writtenFile, error) {
	paths := outputPaths(output, formats)

	files := make([]writtenFile, 0, len(formats))
	for _, f := range formats {
		path := paths[f]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "create directory %s", dir)
			}
		}
		data := artifacts[f]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "write %s", path)
		}
		files = append(files, writtenFile{path: path, size: len(data)})
	}
	return files, nil
}

// outputPaths maps each format to the file it is written to.
//
// A single format whose extension is not a known format extension uses
// output verbatim. Otherwise a known format extension on output is
// stripped and every format gets base + its own extension, so
// "report.html" with html,json yields report.html and report.json.
func outputPaths(output string, formats []string) map[string]string {
	if output == "" {
		output = pipeline.DefaultOutput
	}
	paths := make(map[string]string, len(formats))

	base := basePath(output)
	if len(formats) == 1 && base == output {
		paths[formats[0]] = output
		return paths
	}
	for _, f := range formats {
		paths[f] = base + pipeline.Extension(f)
	}
	return paths
}

// basePath strips a known format extension (.html, .json, ...) from output.
func basePath(output string) string {
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

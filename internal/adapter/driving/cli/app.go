package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dskyberg/instance-count/internal/application/usecase"
	"github.com/dskyberg/instance-count/internal/domain/repository"
	"github.com/dskyberg/instance-count/internal/shared/types"
	"github.com/dskyberg/instance-count/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	configRepo    repository.ConfigRepository
	stdout        io.Writer
	stderr        io.Writer
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	rootCmd := &cobra.Command{
		Use:           "instance-count",
		Short:         "Compare running EC2 and RDS instances against reserved capacity",
		Version:       version.FormatVersion(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          app.runCommand,
	}
	rootCmd.SetVersionTemplate(`{{printf "instance-count version: %s\n" .Version}}`)

	rootCmd.Flags().StringP("protocol", "p", string(types.ProtocolTermio), "Output format: termio or html")
	rootCmd.Flags().StringP("file", "f", "", "Write the report to this file instead of stdout")

	app.rootCmd = rootCmd
	return app
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}

// SetOutput redirects the report and the banner.
func (app *CLIApp) SetOutput(stdout, stderr io.Writer) {
	app.stdout = stdout
	app.stderr = stderr
	app.rootCmd.SetOut(stdout)
	app.rootCmd.SetErr(stderr)
}

// SetArgs overrides os.Args for the root command.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// Execute runs the CLI application.
func (app *CLIApp) Execute(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// parseArgs merges the config file named by INSTANCE_COUNT_CONFIG with the
// command line. Flags set explicitly win over the file.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	protocolFlag, _ := cmd.Flags().GetString("protocol")
	fileFlag, _ := cmd.Flags().GetString("file")

	args := &types.CLIArgs{
		Protocol: types.Protocol(protocolFlag),
		File:     fileFlag,
	}

	if path := app.configRepo.ConfigPath(); path != "" {
		cfg, err := app.configRepo.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		applyConfig(args, cfg, cmd.Flags().Changed)
	}

	protocol, err := types.ParseProtocol(string(args.Protocol))
	if err != nil {
		return nil, err
	}
	args.Protocol = protocol

	if args.Dir != "" {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// applyConfig copies file values into args, leaving explicitly set flags alone.
func applyConfig(args *types.CLIArgs, cfg *types.Config, changed func(string) bool) {
	if cfg.Protocol != "" && !changed("protocol") {
		args.Protocol = types.Protocol(cfg.Protocol)
	}
	if cfg.OutputFile != "" && !changed("file") {
		args.File = cfg.OutputFile
	}
	args.Profile = cfg.Profile
	args.Region = cfg.Region
	args.Families = cfg.Families
	args.ReportName = cfg.ReportName
	args.ReportType = cfg.ReportType
	args.Dir = cfg.Dir
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.stderr)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	if cliArgs.File == "" {
		return app.reportUseCase.RunReport(cmd.Context(), cliArgs, app.stdout)
	}

	file, err := os.Create(cliArgs.File)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err := app.reportUseCase.RunReport(cmd.Context(), cliArgs, file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing output file: %w", err)
	}
	return nil
}

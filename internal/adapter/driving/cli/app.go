package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rmarques/sales-dashboard-go/internal/adapter/driving/web"
	"github.com/rmarques/sales-dashboard-go/internal/application/usecase"
	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
	"github.com/rmarques/sales-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "sales-dashboard",
		Short:   "Sales Dashboard CLI",
		Version: formattedVersion, // Use a versão formatada
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "Sales Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("db", "b", "", "Path to the SQLite sales database (env SALESDASH_DB, default sales.db)")
	rootCmd.PersistentFlags().StringP("report", "y", "", "Report to build: all-sales, by-product, daily-summary, by-category (default all-sales)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("export", "e", nil, "Export formats: csv, json, pdf, xlsx, html (comma-separated)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().String("start-date", "", "Only include sales on or after this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("end-date", "", "Only include sales on or before this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringSliceP("products", "p", nil, "Only include these products (comma-separated)")
	rootCmd.PersistentFlags().StringSliceP("categories", "c", nil, "Only include these categories (comma-separated)")
	rootCmd.PersistentFlags().Bool("trend", false, "Display a monthly sales trend as bars instead of the report table")
	rootCmd.PersistentFlags().String("addr", "", "Listen address for the web dashboard (env SALESDASH_ADDR, default :8080)")
	rootCmd.PersistentFlags().Int("refresh", 0, "Auto-refresh interval of the web dashboard in seconds (5-60, default 10)")
	rootCmd.PersistentFlags().Bool("paused", false, "Start the web dashboard with auto-refresh paused")

	rootCmd.AddCommand(app.newServeCommand())
	rootCmd.AddCommand(app.newSeedCommand())
	rootCmd.AddCommand(app.newVersionCommand())

	app.rootCmd = rootCmd
	return app
}

// newServeCommand cria o subcomando que sobe o painel web.
func (app *CLIApp) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the sales dashboard over HTTP",
		RunE:  app.runServe,
	}
}

// newSeedCommand cria o subcomando que popula o banco de demonstração.
func (app *CLIApp) newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the sales database with demo data",
		RunE:  app.runSeed,
	}
}

// newVersionCommand cria o subcomando que imprime a versão do binário.
func (app *CLIApp) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the Sales Dashboard version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Sales Dashboard version: %s\n", version.FormatVersion())
		},
	}
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.PersistentFlags()

	configFile, _ := flags.GetString("config-file")
	database, _ := flags.GetString("db")
	reportType, _ := flags.GetString("report")
	reportName, _ := flags.GetString("report-name")
	exportFormats, _ := flags.GetStringSlice("export")
	dir, _ := flags.GetString("dir")
	startDate, _ := flags.GetString("start-date")
	endDate, _ := flags.GetString("end-date")
	products, _ := flags.GetStringSlice("products")
	categories, _ := flags.GetStringSlice("categories")
	trend, _ := flags.GetBool("trend")
	listenAddr, _ := flags.GetString("addr")
	refreshSeconds, _ := flags.GetInt("refresh")
	paused, _ := flags.GetBool("paused")

	// O diretório vazio é resolvido depois (arquivo de configuração e,
	// em último caso, o diretório corrente na hora de gravar o artefato)
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		Database:       database,
		ReportName:     reportName,
		ReportType:     reportType,
		ExportFormats:  exportFormats,
		Dir:            dir,
		StartDate:      startDate,
		EndDate:        endDate,
		Products:       products,
		Categories:     categories,
		Trend:          trend,
		ListenAddr:     listenAddr,
		RefreshSeconds: refreshSeconds,
		Paused:         paused,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go checkLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa o painel no terminal
	ctx := context.Background()
	return app.reportUseCase.RunDashboard(ctx, cliArgs)
}

// runServe sobe o servidor HTTP do painel.
func (app *CLIApp) runServe(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}
	if err := app.reportUseCase.ResolveArgs(cliArgs); err != nil {
		return err
	}
	if _, err := app.reportUseCase.Store(cliArgs.Database); err != nil {
		return err
	}

	server := web.NewServer(app.reportUseCase, cliArgs)
	return server.Run(cliArgs.ListenAddr)
}

// runSeed popula o banco com dados de demonstração.
func (app *CLIApp) runSeed(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.reportUseCase.RunSeed(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}

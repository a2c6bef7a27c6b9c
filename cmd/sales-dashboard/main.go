package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rmarques/sales-dashboard-go/internal/adapter/driven/config"
	"github.com/rmarques/sales-dashboard-go/internal/adapter/driven/export"
	"github.com/rmarques/sales-dashboard-go/internal/adapter/driven/sqlite"
	"github.com/rmarques/sales-dashboard-go/internal/adapter/driving/cli"
	"github.com/rmarques/sales-dashboard-go/internal/application/usecase"
	"github.com/rmarques/sales-dashboard-go/pkg/console"
	"github.com/rmarques/sales-dashboard-go/pkg/version"
)

func main() {
	// Variáveis SALESDASH_* podem vir de um arquivo .env local
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso; o banco é aberto sob demanda porque o
	// caminho só é conhecido depois do parse das flags
	reportUseCase := usecase.NewReportUseCase(
		sqlite.NewSalesRepository,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo e fecha o banco antes de sair
	err := app.Execute()
	if cerr := reportUseCase.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

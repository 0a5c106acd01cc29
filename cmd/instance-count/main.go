package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dskyberg/instance-count/internal/adapter/driven/aws"
	"github.com/dskyberg/instance-count/internal/adapter/driven/config"
	"github.com/dskyberg/instance-count/internal/adapter/driven/export"
	"github.com/dskyberg/instance-count/internal/adapter/driven/render"
	"github.com/dskyberg/instance-count/internal/adapter/driving/cli"
	"github.com/dskyberg/instance-count/internal/application/usecase"
	"github.com/dskyberg/instance-count/pkg/console"
	"github.com/joho/godotenv"
)

func main() {
	// .env é opcional
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(config.NewConfigRepository())

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		aws.NewInventoryRepository,
		render.New,
		export.NewExportRepository(),
		console.NewConsole(),
	)
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo
	if err := app.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

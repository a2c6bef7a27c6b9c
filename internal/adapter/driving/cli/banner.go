package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/rmarques/sales-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$    /$$$$$$   /$$        /$$$$$$$$   /$$$$$$
         /$$__  $$  /$$__  $$ | $$       | $$_____/  /$$__  $$
        | $$  \__/ | $$  \ $$ | $$       | $$       | $$  \__/
        |  $$$$$$  | $$$$$$$$ | $$       | $$$$$    |  $$$$$$
         \____  $$ | $$__  $$ | $$       | $$__/     \____  $$
         /$$  \ $$ | $$  | $$ | $$       | $$         /$$  \ $$
        |  $$$$$$/ | $$  | $$ | $$$$$$$$ | $$$$$$$$ |  $$$$$$/
         \______/  |__/  |__/ |________/ |________/  \______/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Sales Dashboard CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	// Usa a função do pacote version para verificar por atualizações
	version.CheckLatestVersion(currentVersion)
}

package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/stock-analytics-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
   _____ _             _        _                _       _   _          
  / ____| |           | |      / \   _ __   __ _| |_   _| |_(_) ___ ___ 
  \___ \| |_ ___   ___| | __  / _ \ | '_ \ / _' | | | | | __| |/ __/ __|
   ___) | __/ _ \ / __| |/ / / ___ \| | | | (_| | | |_| | |_| | (__\__ \
  |____/ \__\___/ \___|_|\_\/_/   \_\_| |_|\__,_|_|\__, |\__|_|\___|___/
                                                   |___/                
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Stock Analytics Dashboard CLI (v%s)", formattedVersion)))
}

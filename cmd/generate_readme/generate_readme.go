package main

import (
	"fmt"
	"os"
	"text/template"

	"github.com/keshon/svcs/internal/command"

	_ "github.com/keshon/svcs/internal/command/add"
	_ "github.com/keshon/svcs/internal/command/checkout"
	_ "github.com/keshon/svcs/internal/command/commit"
	_ "github.com/keshon/svcs/internal/command/config"
	_ "github.com/keshon/svcs/internal/command/help"
	_ "github.com/keshon/svcs/internal/command/log"
	_ "github.com/keshon/svcs/internal/command/status"
	_ "github.com/keshon/svcs/internal/command/verify"
)

func main() {
	tplBytes, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		fmt.Printf("Failed to read template: %v\n", err)
		os.Exit(1)
	}

	tpl, err := template.New("readme").Parse(string(tplBytes))
	if err != nil {
		fmt.Printf("Failed to parse template: %v\n", err)
		os.Exit(1)
	}

	sections := ""
	for _, cmd := range command.AllCommands() {
		sections += fmt.Sprintf(
			"### %s\n%s\n```\n%s\n%s\n```\n\n",
			cmd.Name(),
			cmd.Brief(),
			cmd.Usage(),
			cmd.Help(),
		)
	}

	data := map[string]string{
		"CommandSections": sections,
	}

	outFile, err := os.Create("README.md")
	if err != nil {
		fmt.Printf("Failed to create README.md: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := tpl.Execute(outFile, data); err != nil {
		fmt.Printf("Failed to render template: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("README.md generated successfully")
}

package main

import (
	"log"
	"os"

	sitecli "github.com/altheman/website/cli"
	"github.com/joho/godotenv"
	clilib "github.com/urfave/cli/v2"
)

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runApp(args []string) error {
	// .env is optional; it lets LOG_LEVEL live next to the site.
	_ = godotenv.Load()

	app := &clilib.App{
		Name:  "altheman",
		Usage: "Serve the Altheman personal website",
		Commands: []*clilib.Command{
			sitecli.InitCommand,
			sitecli.DevCommand,
			sitecli.ProdCommand,
			sitecli.CheckCommand,
			sitecli.InfoCommand,
		},
	}

	return app.Run(args)
}

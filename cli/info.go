package cli

import (
	"fmt"
	"io"

	"github.com/altheman/website"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print the effective config, templates and routes",
	Flags: configFlags(),
	Action: func(c *cli.Context) error {
		cfg, err := configFromContext(c, "")
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		fmt.Println("⚙️  Config:")
		fmt.Print(string(out))
		fmt.Println()

		app, err := website.Build(cfg, io.Discard)
		if err != nil {
			return err
		}

		fmt.Println("🧩 Templates Found:", app.Store.Len())
		for _, name := range app.Store.Names() {
			fmt.Println("   -", name)
		}

		fmt.Println("🗂️  Routes:")
		for _, route := range app.Router.Routes() {
			fmt.Printf("   %s %s\n", route.Method, route.Path)
		}

		return nil
	},
}

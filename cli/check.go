package cli

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/altheman/website"
	"github.com/altheman/website/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Load every template and render every route",
	Flags: configFlags(),
	Action: func(c *cli.Context) error {
		cfg, err := configFromContext(c, "")
		if err != nil {
			return err
		}

		app, err := website.Build(cfg, os.Stderr)
		if err != nil {
			fmt.Printf("❌ templates → %v\n", err)
			return cli.Exit("templates failed to load", 1)
		}

		var failed bool
		for _, page := range core.Pages {
			if msg := checkPage(app, page); msg != "" {
				failed = true
				fmt.Printf("❌ %s → %s\n", page.Path, msg)
				continue
			}
			fmt.Printf("✅ %s\n", page.Path)
		}

		if code := serve(app, core.AssetRoute).Code; code != http.StatusOK {
			failed = true
			fmt.Printf("❌ %s → status %d (%s)\n", core.AssetRoute, code, cfg.AssetPath)
		} else {
			fmt.Printf("✅ %s\n", core.AssetRoute)
		}

		if failed {
			return cli.Exit("some routes failed to render", 1)
		}

		fmt.Println("✅ All routes rendered successfully.")
		return nil
	},
}

// checkPage returns a description of what is wrong with page, or "" if it
// renders. Render failures are blank rather than errors, so blank output is
// the failure signal.
func checkPage(app *website.App, page core.Page) string {
	if !app.Store.Has(page.Template) {
		return fmt.Sprintf("template %q not found", page.Template)
	}
	if app.Store.Render(context.Background(), page.Template, page.Data()) == "" {
		return fmt.Sprintf("template %q rendered empty", page.Template)
	}

	rec := serve(app, page.Path)
	if rec.Code != http.StatusOK {
		return fmt.Sprintf("status %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) == "" {
		return fmt.Sprintf("layout %q rendered empty", core.LayoutTemplate)
	}
	return ""
}

func serve(app *website.App, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

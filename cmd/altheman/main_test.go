package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	sitecli "github.com/altheman/website/cli"
	"github.com/urfave/cli/v2"
)

func dummyCmd(name string) *cli.Command {
	return &cli.Command{
		Name: name,
		Action: func(c *cli.Context) error {
			return nil
		},
	}
}

func failingCmd(name string) *cli.Command {
	return &cli.Command{
		Name: name,
		Action: func(c *cli.Context) error {
			return errors.New("intentional failure")
		},
	}
}

func stubCommands(t *testing.T) {
	t.Helper()
	orig := []*cli.Command{sitecli.InitCommand, sitecli.DevCommand, sitecli.ProdCommand, sitecli.CheckCommand, sitecli.InfoCommand}
	t.Cleanup(func() {
		sitecli.InitCommand, sitecli.DevCommand, sitecli.ProdCommand, sitecli.CheckCommand, sitecli.InfoCommand =
			orig[0], orig[1], orig[2], orig[3], orig[4]
	})

	sitecli.InitCommand = dummyCmd("init")
	sitecli.DevCommand = dummyCmd("dev")
	sitecli.ProdCommand = dummyCmd("prod")
	sitecli.CheckCommand = dummyCmd("check")
	sitecli.InfoCommand = dummyCmd("info")
}

func Test_runApp_SuccessfulCommands(t *testing.T) {
	stubCommands(t)

	for _, cmd := range []string{"init", "dev", "prod", "check", "info"} {
		t.Run(cmd, func(t *testing.T) {
			if err := runApp([]string{"altheman", cmd}); err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
		})
	}
}

func Test_runApp_ErrorCommand(t *testing.T) {
	stubCommands(t)
	sitecli.InitCommand = failingCmd("init")

	err := runApp([]string{"altheman", "init"})
	if err == nil || err.Error() != "intentional failure" {
		t.Fatalf("Expected error 'intentional failure', got: %v", err)
	}
}

func Test_runApp_LoadsDotEnv(t *testing.T) {
	stubCommands(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	if err := runApp([]string{"altheman", "info"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := os.Getenv("LOG_LEVEL"); got != "debug" {
		t.Errorf("expected LOG_LEVEL from .env, got %q", got)
	}
}

func Test_main_LogFatalPath(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		os.Args = []string{"altheman", "invalidCommand"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=Test_main_LogFatalPath", "invalidCommand")
	cmd.Env = append(os.Environ(), "BE_CRASHER=1")

	output, err := cmd.CombinedOutput()

	if exitErr, ok := err.(*exec.ExitError); !ok {
		t.Fatalf("Expected exit error, got: %v", err)
	} else if exitErr.ExitCode() == 0 {
		t.Fatalf("Expected non-zero exit code from main")
	}

	if !strings.Contains(string(output), "No help topic for") {
		t.Errorf("Expected CLI error output, got: %s", output)
	}
}

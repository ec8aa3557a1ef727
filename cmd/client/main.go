package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/MKhiriev/go-clip-keeper/internal/client"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: go-clip-client [run|sync|register] [flags]

  run       capture the clipboard and synchronize in the background (default)
  sync      run a single synchronization pass and exit
  register  create the configured account on a self-hosted server
`

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.Banner())

	command, args := splitCommand(os.Args[1:])

	log := logger.NewLogger("go-clip-client")
	cfg, err := config.GetClientConfig(args)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.Known() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	switch command {
	case "run":
		log = logger.NewClientLogger("go-clip-client", cfg.App.DataDir)
		err = run(ctx, cfg, log, func(app *client.App) error { return app.Run(ctx) })
	case "sync":
		err = run(ctx, cfg, log, func(app *client.App) error { return app.Synchronize(ctx) })
	case "register":
		if cfg.Remote.Password == "" {
			if cfg.Remote.Password, err = readPassword(); err != nil {
				log.Fatal().Err(err).Msg("reading password")
			}
		}
		err = run(ctx, cfg, log, func(app *client.App) error { return app.Register(ctx) })
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Str("command", command).Msg("client error")
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger, fn func(*client.App) error) error {
	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}
	return fn(app)
}

// splitCommand takes the leading subcommand off args. Flags alone mean run.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "run", args
	}
	return args[0], args[1:]
}

func readPassword() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no password configured and stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

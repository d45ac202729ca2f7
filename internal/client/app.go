// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/MKhiriev/my-group/internal/adapter"
	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/service"
	"github.com/MKhiriev/my-group/internal/store"
	"github.com/MKhiriev/my-group/internal/tui"
	"github.com/MKhiriev/my-group/models"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid command usage")
)

const usage = `usage: my-group-client [flags] [command]

commands:
  tui                                  interactive sign in and dashboard (default)
  login <username> <password>          sign in and keep the session
  register <username> <password> [full name]
                                       sign up a USER account and sign in
  logout                               forget the stored session
  whoami                               show the signed-in account
  create-user <username> <password> <role>
                                       provision an account below yours
  list [all]                           accounts created by you, or every account
  status <user-id> <active|inactive>   activate or deactivate an account
  version                              show the server version
  help                                 show this message
`

type App struct {
	args []string

	storages *store.ClientStorages
	session  *service.ClientSession
	ui       interactiveUI

	out    io.Writer
	errOut io.Writer
	logger *logger.Logger
}

// NewApp opens the local session store and builds the client session.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	return newApp(context.Background(), cfg, logger, os.Stdout, os.Stderr)
}

func newApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger, out, errOut io.Writer) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.App, logger)

	return &App{
		args:     cfg.Args,
		storages: storages,
		session:  services.Session,
		ui:       tui.New(services.Session, logger),
		out:      out,
		errOut:   errOut,
		logger:   logger,
	}, nil
}

// Run initialises the session and executes the command named by the
// remaining arguments. Failures are described on the error output and
// returned.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("close local storage")
		}
	}()

	if err := a.session.Init(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("client session initialised with errors")
	}
	if a.session.Degraded() {
		fmt.Fprintln(a.errOut, "server is unreachable: running in offline demo mode")
	}

	err := a.dispatch(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnknownCommand), errors.Is(err, ErrUsage):
		fmt.Fprintf(a.errOut, "error: %v\n\n%s", err, usage)
	case len(a.args) > 0 && a.args[0] == "login":
		fmt.Fprintf(a.errOut, "error: %s\n", service.DescribeLoginError(err))
	default:
		fmt.Fprintf(a.errOut, "error: %s\n", service.DescribeError(err))
	}
	a.logger.Err(err).Strs("args", redactArgs(a.args)).Msg("client command failed")
	return err
}

func (a *App) dispatch(ctx context.Context) error {
	if len(a.args) == 0 {
		return a.runTUI(ctx)
	}

	command, args := a.args[0], a.args[1:]
	switch command {
	case "tui":
		return a.runTUI(ctx)
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami()
	case "create-user":
		return a.createUser(ctx, args)
	case "list":
		return a.list(ctx, args)
	case "status":
		return a.status(ctx, args)
	case "version":
		return a.version(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) runTUI(ctx context.Context) error {
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: login <username> <password>", ErrUsage)
	}

	principal, err := a.session.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "signed in as %s (%s)\n", principal.Name, principal.Role.Title())
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: register <username> <password> [full name]", ErrUsage)
	}

	req := models.CreateUserRequest{Username: args[0], Password: args[1]}
	if fullName := strings.TrimSpace(strings.Join(args[2:], " ")); fullName != "" {
		req.FullName = &fullName
	}

	principal, err := a.session.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered and signed in as %s (%s)\n", principal.Name, principal.Role.Title())
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *App) whoami() error {
	principal, ok := a.session.Principal()
	if !ok {
		fmt.Fprintln(a.out, "not signed in")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", principal.UserID)
	fmt.Fprintf(w, "username\t%s\n", principal.Username)
	fmt.Fprintf(w, "name\t%s\n", principal.Name)
	fmt.Fprintf(w, "role\t%s\n", principal.Role.Title())
	fmt.Fprintf(w, "mode\t%s\n", a.session.Mode())
	return w.Flush()
}

func (a *App) createUser(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: create-user <username> <password> <role>", ErrUsage)
	}

	user, err := a.session.CreateUser(ctx, models.CreateUserRequest{
		Username: args[0],
		Password: args[1],
		Role:     models.Role(strings.ToUpper(args[2])),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created %s %s (%s)\n", user.Role.Title(), user.Username, user.UserID)
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	var (
		users []models.User
		err   error
	)
	switch {
	case len(args) == 0:
		users, err = a.session.ListSubordinates(ctx)
	case len(args) == 1 && args[0] == "all":
		users, err = a.session.ListAllUsers(ctx)
	default:
		return fmt.Errorf("%w: list [all]", ErrUsage)
	}
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "no accounts")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tSTATUS\tNAME")
	for _, user := range users {
		status := "active"
		if !user.IsActive {
			status = "inactive"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", user.UserID, user.Username, user.Role, status, user.Name())
	}
	return w.Flush()
}

func (a *App) status(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: status <user-id> <active|inactive>", ErrUsage)
	}

	var isActive bool
	switch args[1] {
	case "active":
		isActive = true
	case "inactive":
		isActive = false
	default:
		return fmt.Errorf("%w: status must be active or inactive", ErrUsage)
	}

	user, err := a.session.SetStatus(ctx, args[0], isActive)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s is now %s\n", user.Username, args[1])
	return nil
}

func (a *App) version(ctx context.Context) error {
	v, err := a.session.ServerVersion(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v)
	return nil
}

// redactArgs hides the password positions of commands that take one.
func redactArgs(args []string) []string {
	redacted := append([]string(nil), args...)
	if len(redacted) == 0 {
		return redacted
	}

	switch redacted[0] {
	case "login", "register", "create-user":
		if len(redacted) > 2 {
			redacted[2] = "***"
		}
	}
	return redacted
}

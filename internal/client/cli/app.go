package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"filedrop/internal/client/api"
	"filedrop/internal/client/config"
	"filedrop/internal/client/qr"
	"filedrop/internal/client/session"
	"filedrop/internal/common"
	"filedrop/internal/logging"
)

type App struct {
	config   *config.Config
	client   api.Client
	state    *session.State
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
	renderer qr.Renderer
	scanner  qr.Scanner

	// interactive enables the progress bar; off when stdout is not a
	// terminal so piped output stays clean.
	interactive bool
}

func NewApp(c *config.Config, log logging.Logger) *App {
	return &App{
		config:      c,
		client:      api.New(c.BaseURL, c.RequestTimeout, log),
		state:       session.New(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		log:         log,
		renderer:    qr.TerminalRenderer{},
		scanner:     qr.ImageScanner{},
		interactive: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "filedrop CLI — %s (type 'help' for commands)\n", a.config.BaseURL)
	runREPL(ctx, a, bufio.NewScanner(os.Stdin), a.out)
}

// Status feeds the REPL prompt: active tab, plus markers for a pending code
// or an in-flight transfer.
func (a *App) Status() string {
	s := string(a.state.ActiveTab)
	if a.state.Code != "" {
		s += " " + a.state.Code
	}
	if a.state.Busy {
		s += " busy"
	}
	return s
}

// SwitchTab changes the active tab; unknown names are reported.
func (a *App) SwitchTab(name string) {
	switch session.Tab(name) {
	case session.TabUpload, session.TabDownload:
		a.state.SwitchTab(session.Tab(name))
	default:
		fmt.Fprintln(a.out, "usage: tab upload|download")
	}
}

// Ping probes the service's health endpoint.
func (a *App) Ping(ctx context.Context) {
	if err := a.client.Health(ctx); err != nil {
		fmt.Fprintln(a.out, "server unreachable:", err)
		return
	}
	fmt.Fprintln(a.out, "server is healthy")
}

// ShowState dumps the session state as JSON. Useful for debugging and a
// cheap demonstration that the state is fully serializable.
func (a *App) ShowState() {
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	fmt.Fprintln(a.out, string(data))
}

// printBanner renders the outcome of the most recent operation.
func (a *App) printBanner() {
	switch a.state.Banner.Kind {
	case session.BannerError:
		fmt.Fprintln(a.out, "error:", a.state.Banner.Message)
	case session.BannerSuccess:
		fmt.Fprintln(a.out, "ok:", a.state.Banner.Message)
	}
}

// errorMessage maps an adapter error onto the user-visible banner text:
// server detail verbatim, generic text with the status when there is no
// detail, and status-free generic text for transport failures.
func errorMessage(err error) string {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, common.ErrInvalidResponse):
		return common.ErrInvalidResponse.Error()
	case errors.Is(err, common.ErrFileTooLarge):
		return common.ErrFileTooLarge.Error()
	case errors.Is(err, common.ErrEmptyCode):
		return common.ErrEmptyCode.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	default:
		return "network error, please try again"
	}
}

package client

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-securnote/internal/adapter"
	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
)

const usage = `usage: securnote [global flags] <command> [flags]

commands:
  register         -u <username>                  create an identity and a certificate
  login            -u <username>                  check password and certificate
  challenge-login  -u <username>                  log in with a challenge proof
  certificate      -u <username>                  show your certificate
  notes add        -u <username> -t <title> [-c <content>]
  notes list       -u <username>
  notes view       -u <username> <note-id>
  notes delete     -u <username> <note-id>

Without -c, note content is read from standard input.
`

// App is the securnote command line client.
type App struct {
	adapter adapter.ServerAdapter
	deriver crypto.KeyDeriver
	prompt  PasswordReader

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp wires the client to the server configured in cfg, reading from
// stdin and printing results to stdout.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, err
	}

	stdin := bufio.NewReader(os.Stdin)
	return newApp(serverAdapter, newTerminalPrompt(os.Stdin, stdin, os.Stderr), stdin, os.Stdout, log), nil
}

func newApp(serverAdapter adapter.ServerAdapter, prompt PasswordReader, in io.Reader, out io.Writer, log *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		// DeriveVerifier does not use PBKDF2, the iteration count is unused
		deriver: crypto.NewKeyDeriver(0),
		prompt:  prompt,
		in:      in,
		out:     out,
		logger:  log,
	}
}

// Run dispatches args (without the program name and global flags).
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usageError("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.withUser(ctx, cmd, rest, a.register)
	case "login":
		return a.withUser(ctx, cmd, rest, a.login)
	case "challenge-login":
		return a.withUser(ctx, cmd, rest, a.challengeLogin)
	case "certificate":
		return a.withUser(ctx, cmd, rest, a.certificate)
	case "notes":
		return a.notes(ctx, rest)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return a.usageError(fmt.Sprintf("unknown command %q", cmd))
	}
}

type userCommand func(ctx context.Context, username string) error

// withUser parses the common -u flag and runs fn.
func (a *App) withUser(ctx context.Context, name string, args []string, fn userCommand) error {
	fs := a.flagSet(name)
	username := fs.String("u", "", "username")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if *username == "" {
		return ErrUsernameRequired
	}
	return fn(ctx, *username)
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) usageError(msg string) error {
	fmt.Fprintf(a.out, "%s\n\n%s", msg, usage)
	return ErrUsage
}

// describe turns adapter errors into messages for the terminal.
func describe(err error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrAccessDenied
	case errors.Is(err, adapter.ErrConflict):
		return errors.New("username is already taken")
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return errors.New("server storage is unavailable, try again later")
	default:
		return err
	}
}

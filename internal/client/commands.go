package client

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-securnote/internal/adapter"
	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/models"
)

func (a *App) register(ctx context.Context, username string) error {
	password, err := a.prompt.ReadPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := a.prompt.ReadPassword("Repeat password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	record, err := a.adapter.Register(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return describe(err)
	}

	fmt.Fprintf(a.out, "registered %s\ncertificate %s issued by %s at %s\n",
		record.Username, record.CertID, record.IssuedBy, record.IssuedAt)
	return nil
}

func (a *App) login(ctx context.Context, username string) error {
	if err := a.authenticate(ctx, username); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "access granted for %s\n", username)
	return nil
}

// challengeLogin proves knowledge of the password without sending it: the
// verifier is rebuilt locally from the returned salt and only the proof
// crosses the wire.
func (a *App) challengeLogin(ctx context.Context, username string) error {
	password, err := a.prompt.ReadPassword("Password: ")
	if err != nil {
		return err
	}

	params, err := a.adapter.RequestChallenge(ctx, username)
	if err != nil {
		return describe(err)
	}

	salt, err := hex.DecodeString(params.Salt)
	if err != nil {
		return fmt.Errorf("server sent a malformed salt: %w", err)
	}
	proof := crypto.ComputeProof(a.deriver.DeriveVerifier(salt, password), params.Challenge)

	result, err := a.adapter.VerifyChallenge(ctx, models.ProofRequest{
		Username:  username,
		Challenge: params.Challenge,
		Proof:     proof,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrChallengeExpired) || errors.Is(err, adapter.ErrChallengeAlreadyUsed) {
			return fmt.Errorf("challenge rejected: %w", err)
		}
		return describe(err)
	}
	if !result.Authenticated {
		return ErrAccessDenied
	}

	fmt.Fprintf(a.out, "challenge login succeeded for %s\n", username)
	return nil
}

func (a *App) certificate(ctx context.Context, username string) error {
	if err := a.authenticate(ctx, username); err != nil {
		return err
	}

	record, err := a.adapter.Certificate(ctx)
	if err != nil {
		return describe(err)
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}

func (a *App) notes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.usageError("missing notes subcommand")
	}

	sub, rest := args[0], args[1:]
	fs := a.flagSet("notes " + sub)
	username := fs.String("u", "", "username")
	title := fs.String("t", "", "note title")
	content := fs.String("c", "", "note content")
	if err := fs.Parse(rest); err != nil {
		return ErrUsage
	}
	if *username == "" {
		return ErrUsernameRequired
	}

	contentSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "c" {
			contentSet = true
		}
	})

	switch sub {
	case "add":
		return a.addNote(ctx, *username, *title, *content, contentSet)
	case "list":
		return a.listNotes(ctx, *username)
	case "view", "delete":
		if fs.NArg() != 1 {
			return a.usageError(fmt.Sprintf("notes %s needs exactly one note id", sub))
		}
		if sub == "view" {
			return a.viewNote(ctx, *username, fs.Arg(0))
		}
		return a.deleteNote(ctx, *username, fs.Arg(0))
	default:
		return a.usageError(fmt.Sprintf("unknown notes subcommand %q", sub))
	}
}

// addNote reads the content from standard input unless -c was given.
func (a *App) addNote(ctx context.Context, username, title, content string, contentSet bool) error {
	if strings.TrimSpace(title) == "" {
		return a.usageError("notes add needs a title (-t)")
	}

	if err := a.authenticate(ctx, username); err != nil {
		return err
	}

	if !contentSet {
		raw, err := io.ReadAll(a.in)
		if err != nil {
			return fmt.Errorf("read note content: %w", err)
		}
		content = strings.TrimRight(string(raw), "\n")
	}

	noteID, err := a.adapter.CreateNote(ctx, models.NoteRequest{Title: title, Content: content})
	if err != nil {
		return describe(err)
	}

	fmt.Fprintf(a.out, "note %s saved\n", noteID)
	return nil
}

func (a *App) listNotes(ctx context.Context, username string) error {
	if err := a.authenticate(ctx, username); err != nil {
		return err
	}

	notes, err := a.adapter.ListNotes(ctx)
	if err != nil {
		return describe(err)
	}
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "no notes")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tTITLE")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.NoteID, n.CreatedAt.Local().Format(time.DateTime), n.Title)
	}
	return tw.Flush()
}

func (a *App) viewNote(ctx context.Context, username, noteID string) error {
	if err := a.authenticate(ctx, username); err != nil {
		return err
	}

	note, err := a.adapter.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("note %s not found", noteID)
		}
		return describe(err)
	}

	fmt.Fprintf(a.out, "%s\n%s\n\n%s\n", note.Title, note.CreatedAt.Local().Format(time.DateTime), note.Content)
	return nil
}

func (a *App) deleteNote(ctx context.Context, username, noteID string) error {
	if err := a.authenticate(ctx, username); err != nil {
		return err
	}

	if err := a.adapter.DeleteNote(ctx, noteID); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("note %s not found", noteID)
		}
		return describe(err)
	}

	fmt.Fprintf(a.out, "note %s deleted\n", noteID)
	return nil
}

// authenticate asks for the password and has the server check it together
// with the certificate. The credentials stay on the adapter for the calls
// that follow.
func (a *App) authenticate(ctx context.Context, username string) error {
	password, err := a.prompt.ReadPassword("Password: ")
	if err != nil {
		return err
	}

	a.adapter.SetCredentials(username, password)
	resp, err := a.adapter.Login(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Str("username", username).Msg("login failed")
		return describe(err)
	}
	if !resp.AccessGranted {
		return ErrAccessDenied
	}
	return nil
}

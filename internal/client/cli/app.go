package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/tdfs/internal/client/client"
	"github.com/dmitrijs2005/tdfs/internal/client/config"
	"github.com/dmitrijs2005/tdfs/internal/client/repositories/files"
)

var ErrUsage = errors.New("usage")

const usage = `usage: tdfs [-a addr] [-u user] [-t token] [-c config.json] <command>

commands:
  put <path>        upload a file
  get <id> [out]    download a file
  ls                list files
  rm <id>           delete a file
  pending           list local files whose upload did not finish`

type App struct {
	config  *config.Config
	client  client.Client
	journal files.Repository
	db      *sql.DB
	http    *http.Client
	out     io.Writer
}

// NewApp fills in missing credentials interactively, opens the local
// journal and connects to the server.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := ensureCredentials(c, bufio.NewReader(os.Stdin), os.Stderr); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.LocalDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing local database: %w", err)
	}

	apiClient, err := client.NewFileClientService(c.ServerEndpointAddr, c.UserID, c.UserToken)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:  c,
		client:  apiClient,
		journal: files.NewSQLiteRepository(db),
		db:      db,
		http:    &http.Client{},
		out:     os.Stdout,
	}, nil
}

func ensureCredentials(c *config.Config, reader *bufio.Reader, w io.Writer) error {
	var err error
	if c.UserID == "" {
		if c.UserID, err = GetSimpleText(reader, "User id", w); err != nil {
			return err
		}
	}
	if c.UserToken == "" {
		if c.UserToken, err = GetToken(w); err != nil {
			return err
		}
	}
	if c.UserID == "" || c.UserToken == "" {
		return errors.New("user id and token are required")
	}
	return nil
}

func (a *App) Close() error {
	err := a.client.Close()
	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}
	return err
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command\n%s", ErrUsage, usage)
	}

	if a.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RequestTimeout)
		defer cancel()
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "put":
		if len(rest) != 1 {
			return fmt.Errorf("%w: put <path>", ErrUsage)
		}
		return a.put(ctx, rest[0])
	case "get":
		if len(rest) < 1 || len(rest) > 2 {
			return fmt.Errorf("%w: get <id> [out]", ErrUsage)
		}
		out := ""
		if len(rest) == 2 {
			out = rest[1]
		}
		return a.get(ctx, rest[0], out)
	case "ls", "list":
		return a.list(ctx)
	case "rm", "delete":
		if len(rest) != 1 {
			return fmt.Errorf("%w: rm <id>", ErrUsage)
		}
		return a.remove(ctx, rest[0])
	case "pending":
		return a.pending(ctx)
	case "help":
		fmt.Fprintln(a.out, usage)
		return nil
	}
	return fmt.Errorf("%w: unknown command %q\n%s", ErrUsage, cmd, usage)
}

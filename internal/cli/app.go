package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bluewave/internal/config"
	"bluewave/internal/domain"
	"bluewave/internal/persist"
	"bluewave/internal/report"
	"bluewave/internal/sales"
	"bluewave/internal/session"
	"bluewave/internal/store"
)

// appEnv bundles the wired application for one command invocation.
type appEnv struct {
	cfg      config.Config
	repo     *persist.SQLiteRepository
	store    *store.Store
	sessions *session.Manager
	sales    *sales.Processor
	out      *OutputFormatter
}

// openApp loads the configuration, opens the database and restores
// state and session. Every command runs through here; a failure at
// this stage is a command error, not a domain error.
func openApp(opts *RootOptions, cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}

	if dir := filepath.Dir(cfg.Database); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to create data directory", err)
		}
	}

	repo, err := persist.Open(cfg.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	st, err := store.Open(repo, domain.SystemClock{}, cfg.Settings())
	if err != nil {
		repo.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load data", err)
	}

	sessions, err := session.NewManager(repo, session.FixedCredential{Password: session.DemoPassword})
	if err != nil {
		repo.Close()
		return nil, WrapExitError(ExitCommandError, "failed to restore session", err)
	}

	return &appEnv{
		cfg:      cfg,
		repo:     repo,
		store:    st,
		sessions: sessions,
		sales:    sales.NewProcessor(st),
		out: &OutputFormatter{
			Format: opts.Format,
			Writer: cmd.OutOrStdout(),
		},
	}, nil
}

func (a *appEnv) close() {
	_ = a.repo.Close()
}

// money returns a formatter for the configured currency.
func (a *appEnv) money() *report.MoneyFormatter {
	return report.NewMoneyFormatter(a.store.Settings().Currency)
}

// requireSession returns the active session or a command error telling
// the user to log in.
func (a *appEnv) requireSession() (*domain.Session, error) {
	current := a.sessions.Current()
	if current == nil {
		return nil, WrapExitError(ExitCommandError, "not logged in, run `bluewave login` first", session.ErrNotLoggedIn)
	}
	return current, nil
}

// confirm gates a destructive operation behind a yes/no prompt unless
// the --yes flag was given.
func confirm(cmd *cobra.Command, assumeYes bool, prompt string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, WrapExitError(ExitCommandError, "failed to read confirmation", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/slotbook/slotbook/internal/config"
	"github.com/slotbook/slotbook/pkg/auth"
	"github.com/slotbook/slotbook/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration and dependencies for the CLI front end.
type Application struct {
	cfg  config.Application
	deps *Dependencies
	out  io.Writer
}

// NewApplication constructs the application from the configuration file.
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}
	return &Application{cfg: cfg, deps: BuildDependencies(cfg), out: os.Stdout}, nil
}

// Run logs in, loads the user's preferences (which triggers the first
// synchronization), optionally navigates to another week, and renders the
// grid. week is "" for the current week, "previous"/"next" for adjacent
// weeks, or an ISO date to jump to.
func (a *Application) Run(ctx context.Context, week string) error {
	if a.cfg.Auth.Username != "" {
		credentials := auth.Credentials{Username: a.cfg.Auth.Username, Password: a.cfg.Auth.Password}
		if err := a.deps.Session.Login(ctx, credentials); err != nil {
			return err
		}
		log.Infof("Logged in as %s", a.cfg.Auth.Username)
	}

	// Publishing the preference snapshot drives the view's first fetch.
	if _, err := a.deps.PreferencesBridge.Refresh(ctx); err != nil {
		return err
	}

	if err := a.navigate(ctx, week); err != nil {
		return err
	}

	categories, err := a.deps.CategoryClient.ListCategories(ctx)
	if err != nil {
		log.Warnf("failed to load category names: %v", err)
	}
	categoryNames := make(map[int]string, len(categories))
	for _, c := range categories {
		categoryNames[c.Id] = c.Name
	}

	return a.render(categoryNames)
}

func (a *Application) navigate(ctx context.Context, week string) error {
	switch week {
	case "", "today":
		return nil
	case "previous":
		return a.deps.View.Navigate(ctx, calendar.NavigatePrevious)
	case "next":
		return a.deps.View.Navigate(ctx, calendar.NavigateNext)
	default:
		date, err := time.Parse("2006-01-02", week)
		if err != nil {
			return fmt.Errorf("invalid week %q, expected previous, next, or YYYY-MM-DD: %w", week, err)
		}
		return a.deps.View.JumpTo(ctx, date)
	}
}

func (a *Application) render(categoryNames map[int]string) error {
	view := a.deps.View
	status := view.Status()

	fmt.Fprintf(a.out, "%s\n\n", view.Window().Label())
	if status.Error != "" {
		fmt.Fprintf(a.out, "Error: %s\n", status.Error)
		return nil
	}
	if status.Loading {
		fmt.Fprintln(a.out, "Loading...")
		return nil
	}

	events := view.Events()
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No time slots this week.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, event := range events {
		name := categoryNames[event.Slot.Category]
		if name == "" {
			name = fmt.Sprintf("category %d", event.Slot.Category)
		}
		fmt.Fprintf(w, "%s\t%s – %s\t%s\t%s\n",
			event.Start.Format("Mon Jan 2"),
			event.Start.Format("15:04"), event.End.Format("15:04"),
			name, event.Title)
	}
	return w.Flush()
}

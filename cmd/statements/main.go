// Command statements is a natural-language list: tell it what you did, want,
// or need to remember, and it reconciles the statement into your feed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/deepnoodle-ai/statements"
	"github.com/deepnoodle-ai/statements/classify"
	"github.com/deepnoodle-ai/statements/config"
	"github.com/deepnoodle-ai/statements/dates"
	"github.com/deepnoodle-ai/statements/slogger"
	"github.com/deepnoodle-ai/statements/store"
)

const todosKey = "todos"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("statements", flag.ExitOnError)
	configPath := flags.String("config", config.DefaultPath(), "config file path")
	model := flags.String("model", "", "model alias (overrides config)")
	timezone := flags.String("timezone", "", "IANA timezone (overrides config)")
	day := flags.String("date", "", "selected day as YYYY-MM-DD (defaults to today)")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Usage = func() { usage(flags) }
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *model != "" {
		cfg.Model = *model
	}
	if *timezone != "" {
		cfg.Timezone = *timezone
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := slogger.New(slogger.LevelFromString(cfg.LogLevel))
	ctx := slogger.WithLogger(context.Background(), logger)

	st, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return err
	}

	selectedDate := *day
	if selectedDate == "" {
		selectedDate = dates.Resolve(time.Now(), cfg.Timezone)
	}

	app := &app{
		cfg:          cfg,
		store:        st,
		logger:       logger,
		selectedDate: selectedDate,
	}

	rest := flags.Args()
	if len(rest) == 0 {
		return app.list()
	}
	command, rest := rest[0], rest[1:]

	switch command {
	case "say":
		return app.say(ctx, strings.Join(rest, " "))
	case "add":
		return app.add(strings.Join(rest, " "))
	case "list":
		return app.list()
	case "done":
		return app.mark(rest, statements.StatusComplete)
	case "undone":
		return app.mark(rest, statements.StatusIncomplete)
	case "toggle":
		return app.mark(rest, "")
	case "rm":
		return app.remove(rest)
	case "clear":
		return app.clear(rest)
	default:
		// Bare text works like say: `statements i drank 2l of water`
		return app.say(ctx, strings.Join(append([]string{command}, rest...), " "))
	}
}

type app struct {
	cfg          *config.Config
	store        store.Store
	logger       slogger.Logger
	selectedDate string
}

func (a *app) load() ([]statements.Item, error) {
	var items []statements.Item
	if err := a.store.Load(todosKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// say classifies free-form text and reconciles the resulting batch. The
// batch is applied against the latest stored collection, re-read after the
// classification call returns, so a slow response cannot clobber edits made
// in the meantime.
func (a *app) say(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to say")
	}

	items, err := a.load()
	if err != nil {
		return err
	}

	batch := a.classifyOrFallback(ctx, text, statements.FilterByDate(items, a.selectedDate))

	latest, err := a.load()
	if err != nil {
		return err
	}
	result := statements.Apply(latest, *batch, statements.ApplyContext{
		SelectedDate: a.selectedDate,
		RawText:      text,
		Logger:       a.logger,
	})
	if err := a.store.Save(todosKey, result.Items); err != nil {
		return err
	}
	return a.render(result.Items, result.SortBy)
}

func (a *app) classifyOrFallback(ctx context.Context, text string, snapshot []statements.Item) *statements.Batch {
	provider, err := classify.NewProvider(a.cfg.Model)
	if err != nil {
		a.logger.Warn("unknown model, adding statement verbatim", "model", a.cfg.Model)
		batch := statements.FallbackBatch(text)
		return &batch
	}
	classifier, err := classify.New(classify.Options{LLM: provider, Logger: a.logger})
	if err != nil {
		batch := statements.FallbackBatch(text)
		return &batch
	}

	batch, err := classifier.DetermineAction(ctx, classify.Request{
		Text:     text,
		Items:    snapshot,
		Timezone: a.cfg.Timezone,
	})
	if err != nil {
		a.logger.Warn("classification failed, adding statement verbatim", "error", err)
		fallback := statements.FallbackBatch(text)
		return &fallback
	}
	return batch
}

// add appends an item directly, without the classifier.
func (a *app) add(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to add")
	}
	return a.apply(statements.Batch{Actions: []statements.Action{{
		Action: statements.ActionAdd,
		Text:   strings.ToLower(text),
	}}}, text)
}

func (a *app) mark(args []string, status statements.Status) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one item id")
	}
	return a.apply(statements.Batch{Actions: []statements.Action{{
		Action: statements.ActionMark,
		TodoID: args[0],
		Status: status,
	}}}, "")
}

func (a *app) remove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one item id")
	}
	return a.apply(statements.Batch{Actions: []statements.Action{{
		Action: statements.ActionDelete,
		TodoID: args[0],
	}}}, "")
}

func (a *app) clear(args []string) error {
	selection := statements.ClearAll
	if len(args) > 0 {
		selection = statements.ClearList(args[0])
	}
	return a.apply(statements.Batch{Actions: []statements.Action{{
		Action:      statements.ActionClear,
		ListToClear: selection,
	}}}, "")
}

func (a *app) apply(batch statements.Batch, rawText string) error {
	items, err := a.load()
	if err != nil {
		return err
	}
	result := statements.Apply(items, batch, statements.ApplyContext{
		SelectedDate: a.selectedDate,
		RawText:      rawText,
		Logger:       a.logger,
	})
	if err := a.store.Save(todosKey, result.Items); err != nil {
		return err
	}
	return a.render(result.Items, result.SortBy)
}

func (a *app) list() error {
	items, err := a.load()
	if err != nil {
		return err
	}
	return a.render(items, "")
}

func (a *app) render(items []statements.Item, sortBy statements.SortOption) error {
	if sortBy == "" {
		sortBy = statements.SortNewest
	}
	day := statements.SortItems(statements.FilterByDate(items, a.selectedDate), sortBy)
	renderFeed(os.Stdout, a.selectedDate, day)
	return nil
}

func usage(flags *flag.FlagSet) {
	fmt.Fprint(os.Stderr, `usage: statements [flags] <command> [args]

commands:
  say <text>      classify free-form text and update the feed (default)
  add <text>      add an item verbatim, without the classifier
  list            show the selected day's feed
  done <id>       mark an item complete
  undone <id>     mark an item incomplete
  toggle <id>     toggle an item
  rm <id>         delete an item
  clear [list]    clear the day's items (all, completed, incomplete)

flags:
`)
	flags.PrintDefaults()
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hnsearch/internal/config"
	"hnsearch/internal/eventbus"
	"hnsearch/internal/hn"
	"hnsearch/internal/logging"
	"hnsearch/internal/logic"
	"hnsearch/internal/ui"
)

var version = "dev"

type options struct {
	configFile string
	query      string
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "hnsearch [query]",
		Short:        "Search Hacker News from the terminal",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.query = args[0]
			}
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Path to config.toml (default: user config dir)")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Initial search term (overrides default_query)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(opts *options) error {
	bus := eventbus.New()
	defer bus.Close()

	configPath := opts.configFile
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	// Nothing is subscribed yet; config events are replayed once the log
	// sink and the UI are listening
	startup := &pendingEvents{}
	cfg, err := config.NewConfigServiceWithBus(startup).LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	closeLog, err := logging.Setup(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.LogFilePath(configPath),
		Verbose: opts.verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	}
	defer closeLog()

	log := logging.NewLogger("main")
	stopSink := logEvents(bus)
	defer stopSink()

	query := strings.TrimSpace(opts.query)
	if query == "" {
		query = cfg.DefaultQuery
	}
	log.WithFields(logrus.Fields{
		"config": configPath,
		"query":  query,
	}).Info("starting hnsearch")

	client := hn.NewClient(cfg.API)
	store := logic.NewStore(query, cfg.API.HitsPerPage, bus)
	model := ui.NewModel(cfg, store, client, ui.NewBrowserOpener(cfg.UI.OpenCommand))

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	stopForward := ui.ForwardEvents(bus, p)
	defer stopForward()
	startup.flushTo(bus)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; ok {
			p.Quit()
		}
	}()

	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited with error")
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("exiting")
	return nil
}

// pendingEvents is an EventBus that only queues what is published to it
type pendingEvents struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (q *pendingEvents) Publish(event eventbus.DomainEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, event)
}

func (q *pendingEvents) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (q *pendingEvents) Close() {}

// flushTo republishes the queued events on bus in their original order
func (q *pendingEvents) flushTo(bus eventbus.EventBus) {
	q.mu.Lock()
	events := q.events
	q.events = nil
	q.mu.Unlock()

	for _, e := range events {
		bus.Publish(e)
	}
}

// logEvents writes every domain event to the log file
func logEvents(bus eventbus.EventBus) func() {
	log := logging.NewLogger("events")
	types := []eventbus.EventType{
		eventbus.EventSearchSubmitted,
		eventbus.EventFetchStarted,
		eventbus.EventFetchCompleted,
		eventbus.EventFetchFailed,
		eventbus.EventHitDismissed,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	}

	var unsubs []func()
	for _, et := range types {
		unsubs = append(unsubs, bus.Subscribe(et, func(e eventbus.DomainEvent) {
			entry := log.WithField("event", e.Type())
			if failed, ok := e.(eventbus.FetchFailedEvent); ok {
				entry.WithError(failed.Err).Warn("domain event")
				return
			}
			entry.Debugf("%+v", e)
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

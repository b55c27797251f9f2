package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/odvcencio/inkwell/editor"
	"github.com/odvcencio/inkwell/grammars"
	"github.com/odvcencio/inkwell/web"
)

func main() {
	webAddr := flag.String("web", "", "serve the browser UI on this address (e.g. :8080) instead of the terminal UI")
	themeName := flag.String("theme", "", "theme name")
	tabSize := flag.Int("tabsize", 0, "tab width in columns")
	logFile := flag.String("log", "", "append debug logs to this file")
	configPath := flag.String("config", "", "config file (default ~/.config/inkwell/config.toml)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inkwell: %v\n", err)
		os.Exit(1)
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = *themeName
		case "tabsize":
			cfg.TabSize = *tabSize
		case "log":
			cfg.LogFile = *logFile
		}
	})

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inkwell: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if cfg.GrammarDir != "" {
		n, err := grammars.LoadDir(cfg.GrammarDir)
		if err != nil {
			logger.Warn("grammar directory load failed", "dir", cfg.GrammarDir, "error", err)
		} else {
			logger.Info("grammars loaded", "dir", cfg.GrammarDir, "count", n)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *webAddr != "" {
		err = runWeb(ctx, flag.Args(), cfg, *webAddr, logger)
	} else {
		err = run(ctx, flag.Args(), cfg, logger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "inkwell: %v\n", err)
		os.Exit(1)
	}
}

// newLogger opens the app logger. Without a log file everything is
// discarded: the terminal UI owns the screen, so stray writes would corrupt
// it.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}

// appState adapts the workspace for the web server.
type appState struct {
	ws *editor.Workspace
}

func (s *appState) Workspace() *editor.Workspace     { return s.ws }
func (s *appState) ActiveDocument() *editor.Document { return s.ws.ActiveDocument() }

// runWeb serves the browser frontend instead of the terminal UI.
func runWeb(ctx context.Context, paths []string, cfg Config, addr string, logger *slog.Logger) error {
	ws := editor.NewWorkspace(documentFactory(cfg, logger))
	for _, p := range paths {
		if _, err := ws.OpenFile(p); err != nil {
			return fmt.Errorf("open %s: %w", p, err)
		}
	}
	if ws.Count() == 0 {
		ws.NewUntitled()
	}

	srv := web.NewServer(&appState{ws: ws}, logger)
	if doc := ws.ActiveDocument(); doc != nil {
		defer srv.WatchDocument(doc)()
	}

	server := &http.Server{Addr: addr, Handler: srv}
	go func() {
		<-ctx.Done()
		server.Close()
	}()

	fmt.Printf("Inkwell web UI: http://localhost%s\n", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

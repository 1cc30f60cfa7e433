package main

import (
	"fmt"
	"os"

	"github.com/peralt/cerealstyle-mcp/internal/config"
	"github.com/peralt/cerealstyle-mcp/internal/logger"
	"github.com/peralt/cerealstyle-mcp/internal/mcp"
	"github.com/peralt/cerealstyle-mcp/internal/style"
	"github.com/peralt/cerealstyle-mcp/internal/tools"
	"github.com/peralt/cerealstyle-mcp/internal/tools/library"
	"github.com/peralt/cerealstyle-mcp/internal/tools/styling"
	"github.com/peralt/cerealstyle-mcp/pkg/version"
)

func main() {
	cfg := config.Load()

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg)

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to ensure directories: %v\n", err)
		os.Exit(1)
	}

	if err := applyKeywordOverrides(cfg.OverridesPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load keyword overrides: %v\n", err)
		os.Exit(1)
	}

	registry := tools.NewRegistry()

	if err := registry.Register(tools.NewHealthTool()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register health tool: %v\n", err)
		os.Exit(1)
	}

	for _, t := range styling.GetTools() {
		if err := registry.Register(t); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register tool %s: %v\n", t.Name(), err)
			os.Exit(1)
		}
	}

	// The skeleton library needs a writable database. The styling tools are
	// pure, so a broken library path degrades the server rather than
	// killing it.
	libraryTools, err := library.GetTools(cfg.LibraryPath)
	if err != nil {
		logger.Warn("skeleton library unavailable", "path", cfg.LibraryPath, "error", err)
	} else {
		for _, t := range libraryTools {
			if err := registry.Register(t); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to register tool %s: %v\n", t.Name(), err)
				os.Exit(1)
			}
		}
	}

	logger.Info("starting server",
		"version", version.Version,
		"tools", len(registry.Names()))

	server := mcp.NewServer(registry)
	if err := server.ProcessStream(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func applyKeywordOverrides(path string) error {
	overrides, err := config.LoadKeywordOverrides(path)
	if err != nil {
		return err
	}
	if overrides == nil {
		return nil
	}

	for name, keywords := range overrides.Categories {
		category, err := style.ParseCategory(name)
		if err != nil {
			return fmt.Errorf("keyword overrides: %w", err)
		}
		if err := style.ExtendKeywords(category, keywords); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/docfold/matnav/internal/config"
	"github.com/docfold/matnav/internal/gitmeta"
	"github.com/docfold/matnav/internal/metrics"
	"github.com/docfold/matnav/internal/pagectx"
	"github.com/docfold/matnav/internal/site"
	"github.com/docfold/matnav/internal/urlutil"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"matnav.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Output directory for page context JSON" default:"./navctx"`
	} `cmd:"" help:"Assemble navigation context for every page of the site"`

	Show struct {
		Page string `arg:"" help:"Docname to assemble"`
	} `cmd:"" help:"Print one page's navigation context as JSON"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})).With("build.id", uuid.NewString())
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		if err := runBuild(logger); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "show <page>":
		if err := runShow(logger); err != nil {
			slog.Error("Show failed", "error", err)
			os.Exit(1)
		}
	}
}

func runBuild(logger *slog.Logger) error {
	cfg, s, err := loadSite(logger)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	assembler := pagectx.New(cfg, s,
		pagectx.WithRecorder(metrics.NewPrometheusRecorder(registry)),
		pagectx.WithLogger(logger),
		pagectx.WithReadOnlyHostedBuild(config.ReadOnlyHostedBuild()),
	)

	start := time.Now()
	for _, name := range s.Docs() {
		pageCtx := assembler.Assemble(pageInput(cfg, s, name, logger))

		outPath := filepath.Join(CLI.Build.Output, filepath.FromSlash(name)+".json")
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		data, err := json.MarshalIndent(pageCtx, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	attrs := []any{"duration", time.Since(start).Round(time.Millisecond)}
	for _, fam := range families {
		total := 0.0
		for _, m := range fam.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		attrs = append(attrs, fam.GetName(), total)
	}
	logger.Info("build complete", attrs...)
	return nil
}

func runShow(logger *slog.Logger) error {
	cfg, s, err := loadSite(logger)
	if err != nil {
		return err
	}
	if s.Doc(CLI.Show.Page) == nil {
		return fmt.Errorf("unknown document %q", CLI.Show.Page)
	}

	assembler := pagectx.New(cfg, s,
		pagectx.WithLogger(logger),
		pagectx.WithReadOnlyHostedBuild(config.ReadOnlyHostedBuild()),
	)
	pageCtx := assembler.Assemble(pageInput(cfg, s, CLI.Show.Page, logger))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(pageCtx)
}

func loadSite(logger *slog.Logger) (*config.Config, *site.Site, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, nil, err
	}
	s, err := site.Load(cfg, os.DirFS(cfg.SourceDir), logger)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func pageInput(cfg *config.Config, s *site.Site, name string, logger *slog.Logger) pagectx.PageInput {
	doc := s.Doc(name)
	in := pagectx.PageInput{
		Name:      name,
		TitleHTML: doc.Title,
		Meta:      doc.Meta,
		Body:      doc.BodyHTML,
	}

	revised, err := gitmeta.RevisionDate(cfg.SourceDir, doc.SourcePath)
	if err != nil {
		logger.Warn("revision date unavailable", "doc", name, "error", err)
	} else if !revised.IsZero() {
		in.LastUpdated = revised.Format("January 2, 2006")
	}

	prev, next := s.PrevNext(name)
	if prev != "" {
		in.Prev = &pagectx.PageRef{
			Title: s.Doc(prev).Title,
			URL:   urlutil.RelativeURI(s.TargetURI(name), s.TargetURI(prev)),
		}
	}
	if next != "" {
		in.Next = &pagectx.PageRef{
			Title: s.Doc(next).Title,
			URL:   urlutil.RelativeURI(s.TargetURI(name), s.TargetURI(next)),
		}
	}
	return in
}

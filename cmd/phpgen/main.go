// phpgen reads YAML type-definition files and renders them to formatted
// PHP source.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"phpgen/internal/config"
	"phpgen/internal/model"
	"phpgen/internal/parser"
	"phpgen/internal/render"
)

var (
	inputFile  string
	outputFile string
	configFile string
	perClass   bool
	noOpenTag  bool
	verbose    bool
	showHelp   bool
)

func init() {
	flag.StringVar(&inputFile, "input", "", "Input definition file (required)")
	flag.StringVar(&inputFile, "i", "", "Input definition file (shorthand)")

	flag.StringVar(&outputFile, "output", "", "Output file (default: stdout)")
	flag.StringVar(&outputFile, "o", "", "Output file (shorthand)")

	flag.StringVar(&configFile, "config", "", "Config file (YAML)")
	flag.StringVar(&configFile, "c", "", "Config file (shorthand)")

	flag.BoolVar(&perClass, "per-class", false, "Write one file per class")
	flag.BoolVar(&noOpenTag, "no-open-tag", false, "Omit the <?php opening tag")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, `phpgen - PHP type-definition generator

Usage:
    phpgen -i <definitions.yaml> [options]

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
    # Render all classes to stdout
    phpgen -i entities.yaml

    # Render to a single file
    phpgen -i entities.yaml -o Entities.php

    # One file per class in the configured output directory
    phpgen -i entities.yaml -c phpgen.yaml --per-class

`)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if showHelp {
		flag.Usage()
		return nil
	}
	if inputFile == "" {
		return fmt.Errorf("input file is required (-i or --input)")
	}

	log := zap.NewNop().Sugar()
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		log = logger.Sugar()
	}
	// The run id only appears in diagnostics; rendered bytes stay
	// deterministic.
	log.Infow("starting generation", "run_id", uuid.NewString(), "input", inputFile)

	cfg := config.New()
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	if perClass {
		cfg.Options.PerClass = true
	}
	if noOpenTag {
		cfg.Options.OpenTag = false
	}

	p := parser.New()
	res, err := p.ParseFile(inputFile)
	if err != nil {
		return err
	}
	log.Infow("parsed definitions", "classes", len(res.Classes))

	if cfg.Options.PerClass {
		return writePerClass(cfg, res, log)
	}

	var output *os.File
	if outputFile != "" {
		output, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer output.Close()
	} else {
		output = os.Stdout
	}

	rendered := make([]string, 0, len(res.Classes))
	for _, cls := range res.Classes {
		rendered = append(rendered, render.Class(cls, nil))
	}
	_, err = output.WriteString(fileHeader(cfg, res.Namespace) + strings.Join(rendered, "\n"))
	return err
}

func writePerClass(cfg *config.Config, res *parser.Result, log *zap.SugaredLogger) error {
	for _, cls := range res.Classes {
		if cls.Name() == "" {
			return fmt.Errorf("anonymous classes cannot be written per-class")
		}
		path := filepath.Join(cfg.Options.OutputDir, cls.Name()+".php")
		content := fileHeader(cfg, res.Namespace) + render.Class(cls, nil)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Infow("wrote class", "class", cls.Name(), "path", path)
	}
	return nil
}

// fileHeader builds the opening tag, namespace declaration and use
// statements preceding the rendered types.
func fileHeader(cfg *config.Config, ns *model.Namespace) string {
	var b strings.Builder
	if cfg.Options.OpenTag {
		b.WriteString("<?php\n\n")
	}
	if ns == nil {
		return b.String()
	}
	if ns.Name() != "" {
		b.WriteString("namespace " + ns.Name() + ";\n\n")
	}
	uses := ns.Uses()
	order := ns.UseOrder()
	for _, alias := range order {
		target := uses[alias]
		segments := strings.Split(target, `\`)
		if alias == segments[len(segments)-1] {
			b.WriteString("use " + target + ";\n")
		} else {
			b.WriteString("use " + target + " as " + alias + ";\n")
		}
	}
	if len(order) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hannajonsd/treejson/config"
	"github.com/hannajonsd/treejson/document"
	"github.com/hannajonsd/treejson/parser"
)

// NewRootCommand builds the treejson command
func NewRootCommand() *cobra.Command {
	var language string

	rootCmd := &cobra.Command{
		Use:   "treejson -l <language> <filename>",
		Short: "Print the syntax tree of a source file as JSON",
		Long: `treejson parses a source file with the tree-sitter grammar selected by
--language and prints the whole syntax tree as one JSON document. Every node
carries its type, start and end [row, column] positions, its source text and,
when it has any, its children.

Pass - as the filename to read from standard input.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := cfg.NewLogger(cmd.ErrOrStderr())

			return run(cmd.Context(), log, language, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVarP(&language, "language", "l", "",
		"source language, one of: "+strings.Join(parser.Languages(), ", "))
	if err := rootCmd.MarkFlagRequired("language"); err != nil {
		panic(err)
	}

	return rootCmd
}

// Execute runs the treejson command against the process arguments
func Execute() error {
	return NewRootCommand().Execute()
}

func run(ctx context.Context, log *slog.Logger, language, filePath string, stdin io.Reader, stdout io.Writer) error {
	fileParser, err := parser.CreateParser(language)
	if err != nil {
		return err
	}
	defer fileParser.Close()
	log.Debug("grammar selected", "language", fileParser.GetLanguage())

	parseResult, err := fileParser.ParseFile(ctx, filePath, stdin)
	if err != nil {
		return err
	}
	defer parseResult.Close()

	if log.Enabled(ctx, slog.LevelDebug) {
		stats := parseResult.Stats()
		log.Debug("source parsed",
			"file", filePath,
			"bytes", len(parseResult.Source),
			"nodes", stats.Nodes,
			"depth", stats.MaxDepth,
			"has_error", stats.HasError,
		)
	}

	doc, err := parseResult.Document()
	if err != nil {
		return fmt.Errorf("failed to convert tree of %s: %w", filePath, err)
	}

	// Encode fully before writing so a failure leaves stdout empty.
	var buf bytes.Buffer
	if err := (document.JSONEncoder{}).Encode(&buf, doc); err != nil {
		return err
	}
	log.Debug("document encoded", "nodes", doc.Count(), "bytes", buf.Len())

	if _, err := stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

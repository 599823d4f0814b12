package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vito/lam/pkg/untyped"
)

// Config holds the application configuration
type Config struct {
	Debug    bool
	Expr     string
	Free     []string
	MaxSteps int
	File     string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "lam [flags] [file]",
		Short: "Untyped lambda calculus interpreter",
		Long: `lam evaluates untyped lambda calculus terms under call-by-value
semantics, using a de Bruijn index representation internally.`,
		Example: `  # Evaluate a term from a file
  lam term.lam

  # Evaluate an inline expression
  lam -e '(\x. x) (\y. y)'

  # Declare free variables, outermost first
  lam --free f,g -e 'f ((\x. x) g)'

  # Bound a possibly divergent term
  lam --max-steps 1000 -e '(\x. x x) (\x. x x)'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.File = args[0]
			}
			return run(cmd.Context(), cmd, &cfg)
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&cfg.Expr, "expr", "e", "", "Evaluate an inline expression instead of a file")
	rootCmd.Flags().StringSliceVar(&cfg.Free, "free", nil, "Free variable names, outermost first")
	rootCmd.Flags().IntVar(&cfg.MaxSteps, "max-steps", 0, "Stop after this many reduction steps (0 = unbounded)")

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cobra.Command, cfg *Config) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if fileCfg, err := loadFileConfig(configPath); err == nil {
		if !cmd.Flags().Changed("free") && len(fileCfg.Free) > 0 {
			cfg.Free = fileCfg.Free
		}
		if !cmd.Flags().Changed("max-steps") && fileCfg.MaxSteps > 0 {
			cfg.MaxSteps = fileCfg.MaxSteps
		}
		slog.Debug("loaded config file", "path", configPath, "free", fileCfg.Free, "maxSteps", fileCfg.MaxSteps)
	} else if !os.IsNotExist(errors.Cause(err)) {
		return err
	}

	input, err := readInput(cfg)
	if err != nil {
		return err
	}

	namingCtx := untyped.NewContext(cfg.Free...)
	term, err := untyped.Parse(strings.TrimSpace(input), namingCtx)
	if err != nil {
		return errors.Wrap(err, "parse")
	}
	if cfg.Debug {
		slog.Debug("parsed term", "term", pretty.Sprint(term))
	}

	result, steps := reduce(term, cfg.MaxSteps)
	slog.Debug("reduction finished", "steps", steps)

	rendered, err := untyped.Show(result, namingCtx)
	if err != nil {
		return errors.Wrap(err, "render result")
	}
	fmt.Println(rendered)
	return nil
}

func readInput(cfg *Config) (string, error) {
	switch {
	case cfg.Expr != "":
		return cfg.Expr, nil
	case cfg.File != "":
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return "", errors.Wrapf(err, "reading %s", cfg.File)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(data), nil
	}
}

// reduce drives the term with Eval1 so an external step bound can be
// imposed; the evaluator itself never terminates on divergent terms.
func reduce(term untyped.Term, maxSteps int) (untyped.Term, int) {
	steps := 0
	for maxSteps == 0 || steps < maxSteps {
		next, err := untyped.Eval1(term)
		if errors.Is(err, untyped.ErrNoRuleApplies) {
			break
		}
		term = next
		steps++
	}
	return term, steps
}

// Package diff implements the file comparison command.
package diff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssdiff/compare"
	"cssdiff/config"
	"cssdiff/css"
	"cssdiff/report"
	"cssdiff/resolve"
	"cssdiff/state"
)

const totalSteps = 4

// Flags returns command line flags understood by Run.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"},
			Usage: "report `FORMAT` (supported formats: " + strings.Join(config.ReportFormatNames(), ", ") + ")"},
		&cli.StringFlag{Name: "color",
			Usage: "colorize text report: `WHEN` (" + strings.Join(config.ColorModeNames(), ", ") + ")"},
		&cli.BoolFlag{Name: "details", Usage: "list changed properties for selectors present in both files"},
		&cli.StringFlag{Name: "workdir", Usage: "`DIRECTORY` to resolve relative file references against"},
		&cli.BoolFlag{Name: "strict", Usage: "treat any CSS grammar error as fatal"},
		&cli.BoolFlag{Name: "skip-at-rules", Usage: "do not compare at-rule blocks (@media, @supports, ...)"},
		&cli.StringFlag{Name: "encoding",
			Usage: "force input `ENCODING` for files without BOM (see IANA.org for character set names)"},
		&cli.BoolFlag{Name: "natural", Usage: "sort reported selectors in natural order instead of source order"},
		&cli.BoolFlag{Name: "fail-on-diff", Usage: "end with error when files are different"},
	}
}

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if cmd.Args().Len() < 2 {
		return errors.New("need to provide two CSS file references")
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("diff")

	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many files", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if err := applyFlags(cmd, env.Cfg); err != nil {
		return err
	}

	res, err := process(ctx, cmd.Args().Get(0), cmd.Args().Get(1), log)
	if err != nil {
		return err
	}
	if cmd.Bool("fail-on-diff") && !res.Empty() {
		return compare.ErrDifferent
	}
	return nil
}

// applyFlags superimposes command line flags on loaded configuration.
func applyFlags(cmd *cli.Command, cfg *config.Config) (err error) {
	if cmd.IsSet("format") {
		if cfg.Report.Format, err = config.ParseReportFormat(cmd.String("format")); err != nil {
			return fmt.Errorf("bad --format value: %w", err)
		}
	}
	if cmd.IsSet("color") {
		if cfg.Report.Color, err = config.ParseColorMode(cmd.String("color")); err != nil {
			return fmt.Errorf("bad --color value: %w", err)
		}
	}
	if cmd.IsSet("details") {
		cfg.Report.Details = cmd.Bool("details")
	}
	if cmd.IsSet("workdir") {
		cfg.Compare.WorkingDirectory = cmd.String("workdir")
	}
	if cmd.IsSet("strict") {
		cfg.Compare.Strict = cmd.Bool("strict")
	}
	if cmd.Bool("skip-at-rules") {
		cfg.Compare.AtRules = config.AtRulesModeSkip
	}
	if cmd.IsSet("encoding") {
		cfg.Compare.Encoding = cmd.String("encoding")
	}
	if cmd.Bool("natural") {
		cfg.Report.Order = config.OrderModeNatural
	}
	return nil
}

// process compares two referenced stylesheets and prints report.
func process(ctx context.Context, refA, refB string, log *zap.Logger) (*compare.Result, error) {
	env := state.EnvFromContext(ctx)
	cfg := env.Cfg

	out := env.Out
	if out == nil {
		out = os.Stdout
	}
	stream, _ := out.(*os.File)
	printer := report.New(out, &cfg.Report, report.ColorEnabled(cfg.Report.Color, stream))

	wd := cfg.Compare.WorkingDirectory
	if len(wd) == 0 {
		var err error
		if wd, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("unable to get working directory: %w", err)
		}
	}

	enc, err := css.LookupEncoding(cfg.Compare.Encoding)
	if err != nil {
		return nil, err
	}

	printer.Progress(1, totalSteps, "Reading files")

	resolver := resolve.New(wd, cfg.Compare.Extension, log)
	parser := css.NewParser(log,
		css.WithStrict(cfg.Compare.Strict),
		css.WithSkipAtRules(cfg.Compare.AtRules == config.AtRulesModeSkip))

	sheets := make([]*css.Stylesheet, 2)
	paths := make([]string, 2)
	for i, ref := range []string{refA, refB} {
		if paths[i], err = resolver.Resolve(ref); err != nil {
			return nil, err
		}
		if err := env.Rpt.StoreCopy(fmt.Sprintf("input/%d-%s", i+1, slug.Make(filepath.Base(paths[i]))), paths[i]); err != nil {
			log.Warn("Unable to store input file in debug report", zap.String("file", paths[i]), zap.Error(err))
		}
		if sheets[i], err = parser.ParseFile(paths[i], enc); err != nil {
			return nil, err
		}
		for _, w := range sheets[i].Warnings {
			log.Warn("Stylesheet problem", zap.String("file", paths[i]), zap.String("details", w))
		}
		log.Debug("Stylesheet loaded", zap.String("file", paths[i]), zap.Int("groups", len(sheets[i].Rules)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	printer.Progress(2, totalSteps, "Building CSS maps")

	selectors := make([]*compare.SelectorMap, 2)
	for i, sheet := range sheets {
		if selectors[i], err = compare.Build(sheet); err != nil {
			return nil, fmt.Errorf("%s: %w", paths[i], err)
		}
		if env.Rpt != nil {
			name := slug.Make(filepath.Base(paths[i]))
			env.Rpt.StoreData(fmt.Sprintf("normalized/%d-%s.css", i+1, name), []byte(sheet.String()))
			env.Rpt.StoreData(fmt.Sprintf("selectors/%d-%s.txt", i+1, name), []byte(selectors[i].Dump()))
		}
		log.Debug("Selector map built", zap.String("file", paths[i]), zap.Int("selectors", selectors[i].Len()))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	printer.Progress(3, totalSteps, "Comparing files")

	res := compare.Diff(selectors[0], selectors[1])
	if cfg.Report.Order == config.OrderModeNatural {
		res.SortNatural()
	}
	log.Debug("Comparison done",
		zap.Int("only in first", len(res.OnlyInA)),
		zap.Int("only in second", len(res.OnlyInB)),
		zap.Int("differing", len(res.Differing)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	printer.Progress(4, totalSteps, "Building report")

	if err := printer.Report(res, paths[0], paths[1]); err != nil {
		return nil, fmt.Errorf("unable to print report: %w", err)
	}

	if env.Rpt != nil {
		var buf bytes.Buffer
		full := report.New(&buf, &config.ReportConfig{Format: config.ReportFormatJson, Details: true}, false)
		if err := full.Report(res, paths[0], paths[1]); err == nil {
			env.Rpt.StoreData("result.json", buf.Bytes())
		}
	}
	return res, nil
}

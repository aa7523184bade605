package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ECB2020/Hobyah-sub001/internal/convert"
	"github.com/ECB2020/Hobyah-sub001/internal/diff"
	"github.com/ECB2020/Hobyah-sub001/internal/regen"
	"github.com/ECB2020/Hobyah-sub001/internal/sections"
	"github.com/ECB2020/Hobyah-sub001/internal/snapshot"
)

var emitRegen bool

// convertCmd decodes one report and writes the converted report, the
// snapshot, and optionally a regenerated input-style file.
var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert one SES output file",
	Long: `Decodes one SES output file and writes, next to it or into --out:
  <name>_si.PRN       the report with every value converted
  <name>.snapshot.*   the structured snapshot (json or yaml)
  <name>_regen.ses    an input-style regeneration (with --regen)

With --to-us the converted report is suffixed _us instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return processFile(cmd.Context(), args[0], logger)
	},
}

// verifyCmd re-decodes and prints a unified diff of the converted
// report against the source, for conversion QA.
var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Show a line diff between a report and its conversion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, source, err := readReport(args[0])
		if err != nil {
			return err
		}
		res, err := convert.Run(raw, engineOptions(), logger)
		if err != nil {
			return err
		}
		d := diff.Compare(source, strings.Join(res.Lines, "\n")+"\n")
		fmt.Print(d.Format())
		fmt.Printf("%d lines changed\n", d.LinesChanged)
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&emitRegen, "regen", false, "also emit a regenerated input-style file")
}

func engineOptions() sections.Options {
	return sections.Options{ToSI: !cfg.Conversion.ToUS}
}

// processFile is the per-file pipeline shared by convert, batch and
// watch. On a fatal decode error the partial converted report is still
// written for diagnosis; the snapshot is not.
func processFile(_ context.Context, path string, log *zap.Logger) error {
	raw, _, err := readReport(path)
	if err != nil {
		return err
	}

	res, decodeErr := convert.Run(raw, engineOptions(), log)

	if len(res.Lines) > 0 {
		if err := writeLines(outPath(path, convertedSuffix()), res.Lines); err != nil {
			return err
		}
	}
	if decodeErr != nil {
		return decodeErr
	}

	fmtName, err := snapshot.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	snapPath := outPath(path, ".snapshot"+fmtName.Ext())
	f, err := os.Create(snapPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := snapshot.Write(f, res.Document, fmtName); err != nil {
		return err
	}
	log.Info("snapshot written", zap.String("path", snapPath))

	if emitRegen {
		cards, err := regen.Regenerate(res.Document)
		if err != nil {
			return err
		}
		if err := writeLines(outPath(path, "_regen.ses"), cards); err != nil {
			return err
		}
	}
	return nil
}

func convertedSuffix() string {
	if cfg.Conversion.ToUS {
		return "_us.PRN"
	}
	return "_si.PRN"
}

// outPath maps an input path to an output path with the given suffix,
// honoring --out.
func outPath(in, suffix string) string {
	stem := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	dir := cfg.Output.Dir
	if dir == "" {
		dir = filepath.Dir(in)
	}
	return filepath.Join(dir, stem+suffix)
}

// readReport loads a report as lines plus the raw text. Trailing
// carriage returns are stripped; SES files come from several platforms.
func readReport(path string) ([]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	text := string(data)
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, text, nil
}

func writeLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

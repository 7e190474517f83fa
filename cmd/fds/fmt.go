package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	fds "github.com/KimNorgaard/go-fds"
)

func fdsFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachInput(cc.In, args, func(name string, src []byte) error {
		return fmtOne(cfg, cc.Out, name, src)
	})
}

func fmtOne(cfg *FmtConfig, w io.Writer, name string, src []byte) error {
	sec, err := fds.Parse(src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	out, err := fds.Format(sec)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if !cfg.Write && !cfg.Diff && !cfg.List {
		_, err := w.Write(out)
		return err
	}
	if bytes.Equal(src, out) {
		theLog.Debug("already formatted", "name", name)
		return nil
	}
	if cfg.List {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	if cfg.Diff {
		if _, err := io.WriteString(w, lineDiff(name, string(src), string(out))); err != nil {
			return err
		}
	}
	if cfg.Write {
		if name == stdinName {
			return fmt.Errorf("%w: cannot use -w with standard input", cli.ErrUsage)
		}
		info, err := os.Stat(name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(name, out, info.Mode().Perm()); err != nil {
			return fmt.Errorf("could not write %s: %w", name, err)
		}
		theLog.Info("formatted", "name", name)
	}
	return nil
}

// lineDiff renders the line-level differences between a and b, marking
// removed lines with '-' and added lines with '+'.
func lineDiff(name, a, b string) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s (formatted)\n", name, name)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

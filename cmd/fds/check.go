package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	fds "github.com/KimNorgaard/go-fds"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	r := newReporter(os.Stderr)
	var opts []fds.Option
	if cfg.Strict {
		opts = append(opts, fds.Strict())
	}
	failed := 0
	err = eachInput(cc.In, args, func(name string, data []byte) error {
		if !r.check(name, data, opts...) {
			failed++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		theLog.Debug("check failed", "files", failed)
		return cli.ExitCodeErr(1)
	}
	return nil
}

type reporter struct {
	w    io.Writer
	loc  *color.Color
	msg  *color.Color
	text *color.Color
}

func newReporter(w io.Writer) *reporter {
	r := &reporter{
		w:    w,
		loc:  color.New(color.Bold),
		msg:  color.New(color.FgRed),
		text: color.New(color.Faint),
	}
	f, ok := w.(*os.File)
	useColor := ok && isatty.IsTerminal(f.Fd())
	for _, c := range []*color.Color{r.loc, r.msg, r.text} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// check parses data and reports whether it is valid, writing one diagnostic
// line for a failure.
func (r *reporter) check(name string, data []byte, opts ...fds.Option) bool {
	_, err := fds.Parse(data, opts...)
	if err == nil {
		theLog.Debug("ok", "name", name)
		return true
	}
	var pe *fds.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(r.w, "%s %s %s\n",
			r.loc.Sprintf("%s:%d:", name, pe.Line),
			r.msg.Sprint(pe.Reason),
			r.text.Sprintf("`%s`", pe.Text))
		return false
	}
	fmt.Fprintf(r.w, "%s %s\n", r.loc.Sprintf("%s:", name), r.msg.Sprint(err))
	return false
}

package main

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	fds "github.com/KimNorgaard/go-fds"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	return eachInput(cc.In, args[1:], func(name string, data []byte) error {
		sec, err := fds.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := writeValueAt(cc.Out, sec, path, cfg.Lowered); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	})
}

// writeValueAt prints the value at path: scalars as their text, binary as
// base64 and sections in FDS form.
func writeValueAt(w io.Writer, sec *fds.Section, path string, lowered bool) error {
	lookup := sec.Lookup
	if lowered {
		lookup = sec.LookupLowered
	}
	v, ok := lookup(path)
	if !ok {
		return fmt.Errorf("no value at %q", path)
	}
	switch v.Kind() {
	case fds.KindSection:
		sub, _ := v.Section()
		out, err := fds.Format(sub)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case fds.KindBlob:
		b, _ := v.Blob()
		_, err := fmt.Fprintln(w, base64.StdEncoding.EncodeToString(b))
		return err
	default:
		sc, _ := v.Scalar()
		_, err := fmt.Fprintln(w, sc.Text())
		return err
	}
}

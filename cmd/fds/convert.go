package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-fds/codec"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	to := cfg.outType()
	return eachInput(cc.In, args, func(name string, data []byte) error {
		from := cfg.inType(name)
		theLog.Debug("converting", "name", name, "from", from, "to", to)
		out, err := codec.Convert(data, from, to)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		_, err = cc.Out.Write(out)
		return err
	})
}

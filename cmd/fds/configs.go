package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-fds/codec"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log progress to stderr'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to the source file instead of stdout'"`
	Diff  bool `cli:"name=d desc='display diffs instead of rewriting files'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Strict bool `cli:"name=strict desc='reject stray indentation and empty section headers'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Lowered bool `cli:"name=i desc='match path keys case-insensitively'"`

	Get *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	InType, OutType *codec.Type

	Convert *cli.Command
}

func typeFunc(tp **codec.Type) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		t, err := codec.ParseType(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*tp = &t
		return t, nil
	})
}

// inType picks the decoder type for file: -I wins, then the file
// extension, then fds.
func (cfg *ConvertConfig) inType(file string) codec.Type {
	if cfg.InType != nil {
		return *cfg.InType
	}
	if t, ok := codec.TypeForPath(file); ok {
		return t
	}
	return codec.TypeFDS
}

func (cfg *ConvertConfig) outType() codec.Type {
	if cfg.OutType != nil {
		return *cfg.OutType
	}
	return codec.TypeFDS
}

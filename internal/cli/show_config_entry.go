package algobench

import (
	"errors"
	"io"

	"github.com/k0kubun/pp"
	"github.com/mwiater/algobench/internal/appconfig"
)

func runShowConfig(out io.Writer, cfg *appconfig.Config) error {
	if cfg == nil {
		return errors.New("configuration is not loaded")
	}
	appconfig.ShowConfig(out, cfg.ConfigPath, *cfg)
	if cfg.Debug {
		_, _ = io.WriteString(out, "\n")
		_, err := pp.Fprintln(out, *cfg)
		return err
	}
	return nil
}

package lexconfigs

import (
	"github.com/reusee/tumfl/cmds"
	"github.com/reusee/tumfl/configs"
	"github.com/reusee/tumfl/vars"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func (o OutputFormat) Valid() bool {
	return o == FormatText || o == FormatJSON
}

var formatFlag = cmds.Var[string]("-format", "output format, text or json")

func (Module) OutputFormat(
	loader configs.Loader,
) OutputFormat {
	return OutputFormat(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, "format"),
		string(FormatText),
	))
}

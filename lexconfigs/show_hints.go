package lexconfigs

import (
	"github.com/reusee/tumfl/cmds"
	"github.com/reusee/tumfl/configs"
	"github.com/reusee/tumfl/modes"
)

// ShowHints enables printing number hints next to tokens.
type ShowHints bool

var hintsFlag = cmds.Switch("-hints", "print number hints")

func (Module) ShowHints(
	loader configs.Loader,
	mode modes.Mode,
) ShowHints {
	if *hintsFlag {
		return true
	}
	var hints bool
	if err := loader.AssignFirst("hints", &hints); err == nil {
		return ShowHints(hints)
	}
	return mode == modes.ModeDevelopment
}

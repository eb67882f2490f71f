package lexconfigs

import (
	"runtime"

	"github.com/reusee/tumfl/cmds"
	"github.com/reusee/tumfl/configs"
	"github.com/reusee/tumfl/vars"
)

// Jobs is the number of inputs lexed concurrently.
type Jobs int

var jobsFlag = cmds.Var[int]("-jobs", "number of files lexed at the same time")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.NumCPU(),
	))
}

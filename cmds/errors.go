package cmds

import "errors"

var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingArgument   = errors.New("expecting argument, got nothing")
	ErrBadArgument       = errors.New("bad argument")
	ErrDuplicatedCommand = errors.New("duplicated command")
)

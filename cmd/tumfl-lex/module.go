package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tumfl/debugs"
	"github.com/reusee/tumfl/lexconfigs"
)

type Module struct {
	dscope.Module
	Configs lexconfigs.Module
	Debugs  debugs.Module
}

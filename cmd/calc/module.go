package main

import (
	"github.com/reusee/calc/repls"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	REPL repls.Module
}

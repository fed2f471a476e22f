package calcconfigs

import (
	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
)

type ShowContext bool

var showContextFlag = cmds.Switch("-context", "print the offending line under errors")

func (Module) ShowContext(
	loader configs.Loader,
) ShowContext {
	return ShowContext(*showContextFlag || configs.First[bool](loader, "show_context"))
}

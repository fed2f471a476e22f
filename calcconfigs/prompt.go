package calcconfigs

import (
	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/vars"
)

type Prompt string

const DefaultPrompt = "basic > "

var promptFlag = cmds.Var[string]("-prompt", "set the interactive prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		DefaultPrompt,
	))
}

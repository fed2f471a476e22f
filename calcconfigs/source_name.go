package calcconfigs

import (
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/vars"
)

type SourceName string

func (Module) SourceName(
	loader configs.Loader,
) SourceName {
	return SourceName(vars.FirstNonZero(
		configs.First[string](loader, "source_name"),
		"stdin",
	))
}

package calcconfigs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/vars"
)

// HistoryFile is the readline history path, empty for no history.
type HistoryFile string

var (
	historyFlag   = cmds.Var[string]("-history", "set the history file")
	noHistoryFlag = cmds.Switch("-no-history", "do not save history")
)

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if *noHistoryFlag {
		return ""
	}

	// an empty history_file in config disables the default
	var configured string
	err := loader.AssignFirst("history_file", &configured)
	if errors.Is(err, configs.ErrValueNotFound) {
		if home, err := os.UserHomeDir(); err == nil {
			configured = filepath.Join(home, ".calc_history")
		}
	} else if err != nil {
		panic(err)
	}

	return HistoryFile(vars.FirstNonZero(
		*historyFlag,
		configured,
	))
}

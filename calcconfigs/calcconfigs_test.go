package calcconfigs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/modes"
	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, schema)
		},
	).Call(func(
		prompt Prompt,
		historyFile HistoryFile,
		showContext ShowContext,
		sourceName SourceName,
	) {
		if prompt != DefaultPrompt {
			t.Fatalf("got %q", prompt)
		}
		if home, err := os.UserHomeDir(); err == nil {
			if string(historyFile) != filepath.Join(home, ".calc_history") {
				t.Fatalf("got %q", historyFile)
			}
		}
		if showContext {
			t.Fatal("should be false")
		}
		if sourceName != "stdin" {
			t.Fatalf("got %q", sourceName)
		}
	})
}

func TestConfigFile(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/calc.cue"}, schema)
		},
	).Call(func(
		prompt Prompt,
		historyFile HistoryFile,
		showContext ShowContext,
		sourceName SourceName,
	) {
		if prompt != "calc> " {
			t.Fatalf("got %q", prompt)
		}
		if historyFile != "" {
			t.Fatalf("got %q", historyFile)
		}
		if !showContext {
			t.Fatal("should be true")
		}
		if sourceName != "repl" {
			t.Fatalf("got %q", sourceName)
		}
	})
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"-prompt", "> ",
		"-history", "/tmp/calc_history",
	})
	defer cmds.GlobalExecutor.MustExecute([]string{
		"-prompt.",
		"-history.",
	})

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/calc.cue"}, schema)
		},
	).Call(func(
		prompt Prompt,
		historyFile HistoryFile,
	) {
		if prompt != "> " {
			t.Fatalf("got %q", prompt)
		}
		if historyFile != "/tmp/calc_history" {
			t.Fatalf("got %q", historyFile)
		}
	})
}

func TestNoHistory(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{"-no-history"})
	defer cmds.GlobalExecutor.MustExecute([]string{"!-no-history"})

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, schema)
		},
	).Call(func(
		historyFile HistoryFile,
	) {
		if historyFile != "" {
			t.Fatalf("got %q", historyFile)
		}
	})
}

func TestFindConfigs(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".calc.cue"), []byte(`prompt: "x"`), 0644); err != nil {
		t.Fatal(err)
	}
	paths := findConfigs([]string{dir, filepath.Join(dir, "not_exists")})
	if len(paths) != 1 || !strings.HasSuffix(paths[0], ".calc.cue") {
		t.Fatalf("got %v", paths)
	}
}

func TestSchema(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/calc.cue"}, schema)
	if v := configs.First[string](loader, "source_name"); v != "repl" {
		t.Fatalf("got %q", v)
	}
}

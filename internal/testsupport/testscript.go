package testsupport

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/amonks/kaban/task"
)

// ScriptParams returns testscript parameters for the scripts in dir: a
// private HOME with the kaban directories, no color, the default config,
// and the custom commands below.
func ScriptParams(dir string) testscript.Params {
	return testscript.Params{
		Dir:   dir,
		Setup: SetupScriptEnv,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"envset": CmdEnvSet,
			"taskid": CmdTaskID,
		},
	}
}

// SetupScriptEnv gives a script its own HOME under the work dir.
func SetupScriptEnv(env *testscript.Env) error {
	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("KABAN_CONFIG", "")
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	ts.Setenv(args[0], strings.TrimSpace(ts.ReadFile(args[1])))
}

// CmdTaskID finds a task by title in `kaban list --json` output and stores
// its ID in an env var. With negation it asserts no task has the title.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 3 && !(neg && len(args) == 2) {
		ts.Fatalf("usage: taskid FILE TITLE VAR | ! taskid FILE TITLE")
	}

	var items []task.Task
	if err := json.Unmarshal([]byte(ts.ReadFile(args[0])), &items); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}

	title := args[1]
	for _, item := range items {
		if item.Title != title {
			continue
		}
		if neg {
			ts.Fatalf("unexpected task with title %q (%s)", title, item.ID)
		}
		ts.Setenv(args[2], item.ID)
		return
	}

	if !neg {
		ts.Fatalf("task with title %q not found", title)
	}
}

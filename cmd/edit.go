package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"layerdoc/internal/doc"
	"layerdoc/internal/editor"
	"layerdoc/internal/manifest"
	"layerdoc/pkg/logging"
)

// newEditCmd creates the Cobra command that opens an interactive editing
// session on a layer manifest.
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <manifest>",
		Short: "Interactively inspect and edit a layer's setting values",
		Long: `Opens a REPL over the layer's settings. Values start at
their declared defaults; changed values can be exported together with
the layer documentation. The manifest on disk is never modified.`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	l, err := manifest.Load(args[0])
	if err != nil {
		return err
	}

	session, err := editor.NewSession(l)
	if err != nil {
		return err
	}

	repl := &editREPL{session: session, out: cmd.OutOrStdout()}
	return repl.run(cmd)
}

// editREPL holds the state of one interactive editing session.
type editREPL struct {
	session *editor.Session
	out     io.Writer
	rl      *readline.Instance
}

// createCompleter builds tab completion over the session's setting keys.
func (r *editREPL) createCompleter() readline.AutoCompleter {
	keys := func(string) []string {
		return r.session.Data().Keys()
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("list"),
		readline.PcItem("get", readline.PcItemDynamic(keys)),
		readline.PcItem("set", readline.PcItemDynamic(keys)),
		readline.PcItem("check", readline.PcItemDynamic(keys)),
		readline.PcItem("export"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

func (r *editREPL) run(cmd *cobra.Command) error {
	historyFile := filepath.Join(os.TempDir(), ".layerdoc_edit_history")

	config := &readline.Config{
		Prompt:          r.session.Layer().Key + "> ",
		HistoryFile:     historyFile,
		AutoComplete:    r.createCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold: true,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	r.session.OnChange(func(key string) {
		logging.Debug("Edit", "setting %s changed", key)
	})

	fmt.Fprintf(r.out, "Editing %s (%d settings). Type 'help' for commands.\n", r.session.Layer().Key, r.session.Data().Len())

	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				continue
			}
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		quit, err := r.execute(input)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// execute runs one REPL command line. It returns true when the session
// should end.
func (r *editREPL) execute(input string) (bool, error) {
	parts := strings.Fields(input)
	command, args := parts[0], parts[1:]

	switch command {
	case "list":
		return false, r.list()
	case "get":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: get <key>")
		}
		return false, r.get(args[0])
	case "set":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: set <key> <value>")
		}
		return false, r.set(args[0], strings.Join(args[1:], " "))
	case "check":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: check <key>")
		}
		return false, r.check(args[0])
	case "export":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: export <path>")
		}
		return false, r.export(args[0])
	case "help":
		r.help()
		return false, nil
	case "exit", "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command: %s. Type 'help' for available commands", command)
	}
}

func (r *editREPL) list() error {
	prefix := r.session.Layer().SettingPrefix()
	for _, key := range r.session.Data().Keys() {
		value, err := r.session.Format(key)
		if err != nil {
			return err
		}
		enabled, err := r.session.CheckDependence(key)
		if err != nil {
			return err
		}
		marker := " "
		if !enabled {
			marker = "-"
		}
		fmt.Fprintf(r.out, "%s %s%s = %s\n", marker, prefix, key, value)
	}
	return nil
}

func (r *editREPL) get(key string) error {
	value, err := r.session.Format(key)
	if err != nil {
		return err
	}

	meta, err := r.session.Layer().FindSetting(key)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%s (%s) = %s\n", key, meta.Type.Token(), value)
	if meta.Description != "" {
		fmt.Fprintf(r.out, "  %s\n", meta.Description)
	}
	return nil
}

func (r *editREPL) set(key, raw string) error {
	if err := r.session.Set(key, raw); err != nil {
		return err
	}
	value, err := r.session.Format(key)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%s = %s\n", key, value)
	return nil
}

func (r *editREPL) check(key string) error {
	enabled, err := r.session.CheckDependence(key)
	if err != nil {
		return err
	}
	if enabled {
		fmt.Fprintf(r.out, "%s is enabled\n", key)
	} else {
		fmt.Fprintf(r.out, "%s is disabled by its dependence\n", key)
	}
	return nil
}

func (r *editREPL) export(path string) error {
	generator := doc.NewGenerator()
	if err := generator.Export(r.session.Layer(), path); err != nil {
		return err
	}
	for _, diagnostic := range generator.Diagnostics() {
		fmt.Fprintf(r.out, "warning: %s\n", diagnostic)
	}
	fmt.Fprintf(r.out, "Exported %s\n", path)
	return nil
}

func (r *editREPL) help() {
	fmt.Fprint(r.out, `Commands:
  list                 Show every setting with its current value
  get <key>            Show one setting's value and description
  set <key> <value>    Change a setting's value
  check <key>          Show whether a setting's dependence enables it
  export <path>        Export the layer documentation as HTML
  exit                 Leave the session
`)
}

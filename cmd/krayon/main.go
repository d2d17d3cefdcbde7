package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/krayonlabs/krayon/internal/config"
	"github.com/krayonlabs/krayon/pkgs/builtins"
	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/executor"
	"github.com/krayonlabs/krayon/pkgs/scene"
	"github.com/krayonlabs/krayon/pkgs/schema"
	"github.com/krayonlabs/krayon/pkgs/session"
)

// Build-time variables - can be set via ldflags
var (
	Version   string = "dev"
	BuildTime string = "unknown"
	GitCommit string = "unknown"
)

// Global flags
var (
	configFile  string
	sessionFile string
	debug       bool
	jsonOutput  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "krayon [flags]",
	Short: "Interpret krayon scene commands",
	Long: `krayon interprets a small command language for scene manipulation.
Commands look like create_element(type: "circle", name: "c1") and run against
a persistent session: variables and scene state survive between invocations
when a session file is configured.`,
}

var evalCmd = &cobra.Command{
	Use:   "eval <input>",
	Short: "Evaluate command input given on the command line",
	Long: `Evaluate one or more semicolon-separated commands and print each result.
The arguments are joined with spaces before interpretation, so quoting the
whole input as a single shell argument is not required.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return evalInput(strings.Join(args, " "))
	},
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a command script file",
	Long: `Read a script file of semicolon-separated commands and execute it.
Pass "-" to read the script from stdin. Every command runs even when an
earlier one fails; the exit status reports whether the whole script succeeded.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var content []byte
		var err error
		if args[0] == "-" {
			content, err = io.ReadAll(os.Stdin)
			if err != nil {
				return errors.Wrap(err, "reading script from stdin")
			}
		} else {
			content, err = os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading script %s", args[0])
			}
		}
		return evalInput(string(content))
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the available commands",
	Long:  "List every registered command with its parameter signature, or as JSON Schema documents with --json.",
	Args:  cobra.NoArgs,
	RunE:  listCommands,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("krayon %s\n", Version)
		fmt.Printf("Built: %s\n", BuildTime)
		fmt.Printf("Commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVarP(&sessionFile, "session", "s", "", "Path to session file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	commandsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON Schema documents")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(versionCmd)
}

// evalInput runs input against the session context and persists the
// context afterwards when a session file is configured.
func evalInput(input string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, err := loadContext(cfg)
	if err != nil {
		return err
	}

	exec := executor.New(builtins.NewRegistry())
	results := exec.ExecuteBatch(input, ctx)

	failed := 0
	for _, res := range results {
		if res.Success {
			fmt.Printf("ok: %s\n", res.Message)
		} else {
			failed++
			fmt.Printf("error: %s\n", res.Message)
		}
	}

	if path := sessionPath(cfg); path != "" {
		if err := session.Save(path, ctx); err != nil {
			return err
		}
		if debug {
			fmt.Fprintf(os.Stderr, "session saved to %s\n", path)
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d commands failed", failed, len(results))
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

// loadContext restores the session context if one is on disk, otherwise
// builds a fresh one from the configuration.
func loadContext(cfg *config.Config) (*command.Context, error) {
	path := sessionPath(cfg)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if debug {
				fmt.Fprintf(os.Stderr, "session loaded from %s\n", path)
			}
			return session.Load(path)
		}
	}

	ctx := command.NewContext()
	if cfg.AttachScene {
		ctx.AttachScene(scene.New())
	}
	if err := cfg.ApplyVariables(ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

func sessionPath(cfg *config.Config) string {
	if sessionFile != "" {
		return sessionFile
	}
	return cfg.SessionFile
}

func listCommands(cmd *cobra.Command, args []string) error {
	registry := builtins.NewRegistry()

	names := registry.Names()
	sort.Strings(names)

	if jsonOutput {
		docs := make(map[string]interface{}, len(names))
		for _, name := range names {
			c, _ := registry.Get(name)
			docs[name] = schema.ForCommand(c)
		}
		out, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding command schemas")
		}
		fmt.Println(string(out))
		return nil
	}

	for _, name := range names {
		c, _ := registry.Get(name)
		fmt.Printf("%s\n    %s\n", command.Usage(c), c.Description())
	}
	return nil
}

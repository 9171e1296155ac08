package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"go.dw1.io/juggle"
	"go.dw1.io/juggle/internal/file"
	"go.dw1.io/juggle/json"
)

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

type app struct {
	configPath string
	verbose    int
	noColor    bool
	pretty     bool

	file string
	raw  bool

	registry *juggle.Registry
	log      logr.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "juggle",
		Short:         "Cast JSON values between bool, int, float, str, arr and obj",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML file with custom caster definitions")
	flags.CountVarP(&a.verbose, "verbose", "v", "log registry events to stderr (repeat for more)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored error output")
	flags.BoolVar(&a.pretty, "pretty", false, "indent JSON output")
	flags.StringVarP(&a.file, "file", "f", "", "read the input value from a file")
	flags.BoolVar(&a.raw, "raw", false, "treat the input as a plain string instead of JSON")

	root.AddCommand(
		a.castCommand(),
		a.checkCommand(),
		a.castableCommand(),
		a.typesCommand(),
	)

	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	if a.verbose == 0 {
		a.verbose = cfg.Verbose
	}
	if a.noColor || (cfg.Color != nil && !*cfg.Color) {
		pterm.DisableColor()
	}

	stdr.SetVerbosity(a.verbose)
	a.log = stdr.New(log.New(stderr, "juggle: ", log.LstdFlags))
	a.registry = juggle.New(juggle.WithLogger(a.log))

	casters, err := cfg.casters(a.registry)
	if err != nil {
		return err
	}
	a.registry.LoadCasters(casters)

	return cfg.validate(a.registry)
}

func (a *app) castCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cast <type> [value]",
		Short: "Cast a value and print the result as JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.input(cmd, args[1:])
			if err != nil {
				return err
			}

			res, err := a.registry.CastTo(args[0], v)
			if err != nil {
				return err
			}
			if !res.OK() {
				_, tag := juggle.TagOf(v)
				return &exitError{code: 2, err: fmt.Errorf("cannot cast %s to %s", tag, juggle.Resolve(args[0]))}
			}

			return a.print(cmd.OutOrStdout(), res.Value())
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <type> [value]",
		Short: "Report whether a value can be cast",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.input(cmd, args[1:])
			if err != nil {
				return err
			}

			ok, err := a.registry.CanCastTo(args[0], v)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ok)
			return err
		},
	}
}

func (a *app) castableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "castable [value]",
		Short: "List the built-in types a value can be cast to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.input(cmd, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(a.registry.Castable(v), " "))
			return err
		},
	}
}

func (a *app) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List every registered type name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.registry.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// input reads the value from the positional argument, --file, or stdin, in
// that order of preference.
func (a *app) input(cmd *cobra.Command, args []string) (any, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case len(args) > 0:
		data = []byte(args[0])
	case a.file != "":
		data, err = a.readFile(a.file)
	default:
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if a.raw {
		return strings.TrimSuffix(string(data), "\n"), nil
	}

	v, err := json.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	a.log.V(2).Info("decoded input", "bytes", len(data))

	return v, nil
}

func (a *app) readFile(name string) ([]byte, error) {
	f, err := file.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a.log.V(2).Info("reading input file", "name", f.Name(), "mapped", f.Mapped())

	return f.ReadAll()
}

func (a *app) print(w io.Writer, v any) error {
	var (
		out []byte
		err error
	)
	if a.pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bjaus/pp"
	"github.com/bjaus/pp/internal/config"
	"github.com/bjaus/pp/internal/logging"
	"github.com/bjaus/pp/valkeystore"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	addr       string
	dataPath   string
	debug      bool
	sink       pp.Sink
}

var commandShort = map[pp.CommandKind]string{
	pp.StructuredPrint: "Print a key as colorized JSON",
	pp.TablePrint:      "Print a key as a table",
	pp.DelimitedPrint:  "Print a key as CSV",
	pp.MarkupPrint:     "Print a key as an HTML table or list",
}

// newRootCmd builds the pp command tree writing results to out and logs to
// errOut. PB copies go to the system clipboard.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	return buildRootCmd(out, errOut, pp.ClipboardSink{})
}

func buildRootCmd(out, errOut io.Writer, sink pp.Sink) *cobra.Command {
	opts := &rootOptions{sink: sink}

	root := &cobra.Command{
		Use:   "pp",
		Short: "Pretty-print hash, list and set keys",
		Long: `pp renders the value of a hash, list or set key as JSON, a table,
CSV or HTML. Append PB to any command to also copy the output to the
clipboard.

Without a subcommand, pp KEY [PB] runs the config's default_command.`,
		Args:         arity,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, func(cfg config.Config) (pp.CommandKind, error) {
				return pp.ParseCommand(cfg.DefaultCommand)
			})
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(`{{printf "pp version %s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath(), "path to the config file")
	flags.StringVar(&opts.addr, "addr", "", "server address (overrides config)")
	flags.StringVar(&opts.dataPath, "data", "", "read keys from a YAML fixture instead of a server")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	for _, kind := range pp.Commands() {
		root.AddCommand(newPrintCmd(kind, opts))
	}
	return root
}

func newPrintCmd(kind pp.CommandKind, opts *rootOptions) *cobra.Command {
	name := kind.String()
	short := name[len("pp."):]
	return &cobra.Command{
		Use:     short + " KEY [PB]",
		Aliases: []string{name},
		Short:   commandShort[kind],
		Args:    arity,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, func(config.Config) (pp.CommandKind, error) {
				return kind, nil
			})
		},
	}
}

// run loads the configuration, resolves the command kind and prints the
// result of running it against the configured store.
func (o *rootOptions) run(cmd *cobra.Command, args []string, resolve func(config.Config) (pp.CommandKind, error)) error {
	cfg, err := o.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	kind, err := resolve(cfg)
	if err != nil {
		return err
	}
	enc, err := cfg.Encoding()
	if err != nil {
		return err
	}
	store, closeStore, err := o.openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	d := &pp.Dispatcher{Store: store, Sink: o.sink, Encoding: enc}
	res, err := d.Run(cmd.Context(), kind, args)
	if err != nil {
		return err
	}
	text := res.String()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err = io.WriteString(cmd.OutOrStdout(), text)
	return err
}

func arity(_ *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: expected KEY [PB], got %d arguments", pp.ErrWrongArity, len(args))
	}
	return nil
}

func (o *rootOptions) load(logOut io.Writer) (config.Config, error) {
	level := logging.LevelWarn
	if o.debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, logOut)

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if !o.debug {
		if lvl, err := logging.ParseLevel(cfg.LogLevel); err == nil && lvl != level {
			logging.InitForCLI(lvl, logOut)
		}
	}
	if o.addr != "" {
		cfg.Address = o.addr
	}
	return cfg, nil
}

func (o *rootOptions) openStore(cfg config.Config) (pp.Store, func(), error) {
	if o.dataPath != "" {
		f, err := os.Open(o.dataPath)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		store, err := pp.LoadFixture(f)
		if err != nil {
			return nil, nil, err
		}
		logging.Info("CLI", "Loaded fixture %s", o.dataPath)
		return store, func() {}, nil
	}
	store, err := valkeystore.New(valkeystore.Options{
		Address:  cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	logging.Debug("CLI", "Connected to %s", cfg.Address)
	return store, store.Close, nil
}

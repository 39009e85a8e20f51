package aoc

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

type runOpts struct {
	configPath string
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	inputFile  string
	offline    bool
	inputDir   string
}

// runner is the state shared by a single invocation.
type runner struct {
	ctx     context.Context
	out     io.Writer
	opts    runOpts
	cfg     *Config
	log     *zap.Logger
	inputs  *inputStore
	journal *Journal
	samples map[string]sample
}

// Run solves the puzzles of year implemented by slvr. slvr must be a
// pointer to a struct embedding *Puzzle whose methods named D{day}p{part}
// return the answer. Samples are read from the doc comments of the Go
// files in src.
func Run(year int, src fs.FS, slvr any) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cmd := newRootCmd(year, src, slvr, os.Stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(year int, src fs.FS, slvr any, out io.Writer) *cobra.Command {
	r := &runner{out: out}
	root := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Solve Advent of Code %d puzzles", year),
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.init(cmd, year, src)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if r.log != nil {
				_ = r.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.opts.inputFile != "" {
				if r.opts.day == -1 {
					return fmt.Errorf("--input needs --day")
				}
				r.inputs.overrides[r.opts.day] = r.opts.inputFile
			}
			return r.runDays(slvr)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&r.opts.configPath, "config", DefaultConfigPath(), "config file")
	pf.BoolVar(&r.opts.debug, "debug", false, "debug mode")
	pf.BoolVar(&r.opts.offline, "offline", false, "never fetch inputs")
	pf.StringVar(&r.opts.inputDir, "input-dir", "", "directory holding cached inputs (overrides config)")

	f := root.Flags()
	f.IntVar(&r.opts.day, "day", -1, "day to run")
	f.StringVar(&r.opts.part, "part", "", "part to run")
	f.BoolVar(&r.opts.onlySample, "sample", false, "only run sample")
	f.BoolVar(&r.opts.skipSample, "skip-sample", false, "skip sample")
	f.StringVar(&r.opts.inputFile, "input", "", "input file to use instead of the cached input (needs --day)")
	root.MarkFlagsMutuallyExclusive("sample", "skip-sample")

	var descriptions bool
	fetch := &cobra.Command{
		Use:   "fetch",
		Short: "Download and cache the input of every implemented day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.cfg.Offline {
				return fmt.Errorf("fetch: %w", ErrOffline)
			}
			days, err := extractMethods(slvr)
			if err != nil {
				return err
			}
			nums := maps.Keys(days)
			slices.Sort(nums)
			if err := r.inputs.Prefetch(cmd.Context(), nums, descriptions); err != nil {
				return err
			}
			fmt.Fprintf(r.out, "cached %d days in %s\n", len(nums), r.cfg.YearDir())
			return nil
		},
	}
	fetch.Flags().BoolVar(&descriptions, "description", false, "also cache the puzzle descriptions")

	journal := &cobra.Command{
		Use:   "journal",
		Short: "Print recorded answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := r.journal.Entries()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DAY\tPART\tANSWER\tTOOK\tINPUT\tRECORDED")
			for _, e := range entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.12s\t%s\n", e.Day, e.Part, e.Answer, e.Took, e.InputHash, e.RecordedAt.Local().Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
	var save bool
	config := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save {
				if err := r.cfg.Save(r.opts.configPath); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				r.log.Info("saved config", zap.String("path", r.opts.configPath))
			}
			enc := yaml.NewEncoder(r.out)
			defer enc.Close()
			return enc.Encode(r.cfg)
		},
	}
	config.Flags().BoolVar(&save, "save", false, "also write it to the --config path")

	root.AddCommand(fetch, journal, config)
	return root
}

func (r *runner) init(cmd *cobra.Command, year int, src fs.FS) error {
	cfg, err := LoadConfig(r.opts.configPath, year)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("offline") {
		cfg.Offline = r.opts.offline
	}
	if r.opts.inputDir != "" {
		cfg.InputDir = r.opts.inputDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	r.cfg = cfg

	log, err := newLogger(cfg.LogLevel, r.opts.debug)
	if err != nil {
		return err
	}
	r.log = log
	r.ctx = cmd.Context()
	r.inputs = newInputStore(cfg, log)
	r.journal = NewJournal(cfg.Journal(), cfg.Year)
	r.samples, err = extractSamples(src)
	if err != nil {
		return err
	}
	log.Debug("configured",
		zap.Int("year", cfg.Year),
		zap.String("input_dir", cfg.InputDir),
		zap.String("journal", cfg.Journal()),
		zap.Int("samples", len(r.samples)))
	return nil
}

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/spf13/cobra"

	"github.com/govalues/bigdec"
	"github.com/govalues/bigdec/internal/config"
)

// state is shared by all subcommands of one invocation.
type state struct {
	cfg    config.Config
	opts   []bigdec.Option
	logger *logiface.Logger[logiface.Event]
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		s     = &state{}
		flags config.Config
	)
	root := &cobra.Command{
		Use:          "bigcalc",
		Short:        "Exact arbitrary-precision decimal calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("rounding") {
				cfg.Rounding = flags.Rounding
			}
			if f.Changed("max-dp") {
				cfg.MaxDp = flags.MaxDp
				if !f.Changed("max-precision") {
					cfg.MaxPrecision = ""
				}
			}
			if f.Changed("max-precision") {
				cfg.MaxPrecision = flags.MaxPrecision
				if !f.Changed("max-dp") {
					cfg.MaxDp = ""
				}
			}
			if f.Changed("log-level") {
				cfg.LogLevel = flags.LogLevel
			}
			if f.Changed("json") {
				cfg.JSON = flags.JSON
			}
			return s.init(cmd.ErrOrStderr(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.Rounding, "rounding", "round", "rounding mode: round, trunc, floor or ceil")
	pf.StringVar(&flags.MaxDp, "max-dp", "", "maximum number of digits after the decimal point")
	pf.StringVar(&flags.MaxPrecision, "max-precision", "", "maximum number of significant digits of fractional results")
	pf.StringVar(&flags.LogLevel, "log-level", "err", "log level: trace, debug, info, notice, warning, err or disabled")
	pf.BoolVar(&flags.JSON, "json", false, "print the result as a JSON object")

	root.AddCommand(
		binaryCmd(s, "add", "Add two values", bigdec.Decimal.Add),
		binaryCmd(s, "sub", "Subtract the second value from the first", bigdec.Decimal.Sub),
		binaryCmd(s, "mul", "Multiply two values", bigdec.Decimal.Mul),
		binaryCmd(s, "div", "Divide the first value by the second", bigdec.Decimal.Quo),
		binaryCmd(s, "mod", "Remainder of truncated division", bigdec.Decimal.Rem),
		binaryCmd(s, "pow", "Raise the first value to the power of the second", bigdec.Decimal.Pow),
		binaryCmd(s, "root", "The n-th root of the first value", bigdec.Decimal.Root),
		sqrtCmd(s),
		cmpCmd(s),
		roundCmd(s, "round", "Round half away from zero", bigdec.RoundHalfUp),
		roundCmd(s, "trunc", "Round towards zero", bigdec.RoundTrunc),
		roundCmd(s, "floor", "Round towards negative infinity", bigdec.RoundFloor),
		roundCmd(s, "ceil", "Round towards positive infinity", bigdec.RoundCeil),
	)
	return root
}

// init resolves cfg and builds the logger writing to w.
func (s *state) init(w io.Writer, cfg config.Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.opts = opts
	s.logger = stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(lvl),
	).Logger()
	return nil
}

// parseOperands accepts the grammar of [bigdec.Parse] plus the textual
// forms of NaN and the infinities.
func parseOperands(args []string) ([]bigdec.Decimal, error) {
	operands := make([]bigdec.Decimal, len(args))
	for i, arg := range args {
		if err := operands[i].UnmarshalText([]byte(arg)); err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
	}
	return operands, nil
}

type result struct {
	Op       string           `json:"op"`
	Operands []bigdec.Decimal `json:"operands"`
	Result   bigdec.Decimal   `json:"result"`
}

// report logs the evaluation and prints its result.
func (s *state) report(w io.Writer, r result) error {
	b := s.logger.Debug().Str("op", r.Op)
	for i, d := range r.Operands {
		b = b.Stringer(fmt.Sprintf("x%d", i+1), d)
	}
	b.Str("rounding", s.cfg.Rounding).
		Stringer("result", r.Result).
		Log("evaluated")
	if r.Result.IsNaN() {
		s.logger.Warning().Str("op", r.Op).Log("undefined result")
	}

	if s.cfg.JSON {
		return json.NewEncoder(w).Encode(r)
	}
	_, err := fmt.Fprintln(w, r.Result)
	return err
}

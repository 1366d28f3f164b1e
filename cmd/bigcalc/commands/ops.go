package commands

import (
	"github.com/spf13/cobra"

	"github.com/govalues/bigdec"
)

type binaryFunc func(x, y bigdec.Decimal, opts ...bigdec.Option) bigdec.Decimal

func binaryCmd(s *state, name, short string, fn binaryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <x> <y>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			z := fn(operands[0], operands[1], s.opts...)
			return s.report(cmd.OutOrStdout(), result{Op: name, Operands: operands, Result: z})
		},
	}
}

func sqrtCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <x>",
		Short: "Square root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			z := operands[0].Sqrt(s.opts...)
			return s.report(cmd.OutOrStdout(), result{Op: "sqrt", Operands: operands, Result: z})
		},
	}
}

// cmp prints -1, 0 or 1, and NaN if the values are unordered.
func cmpCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <x> <y>",
		Short: "Compare two values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			z := bigdec.NaN
			if c := operands[0].Cmp(operands[1]); c != bigdec.Unordered {
				z = bigdec.NewFromInt64(int64(c))
			}
			return s.report(cmd.OutOrStdout(), result{Op: "cmp", Operands: operands, Result: z})
		},
	}
}

func roundCmd(s *state, name, short string, mode bigdec.RoundingMode) *cobra.Command {
	var scale int
	cmd := &cobra.Command{
		Use:   name + " <x>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			z := operands[0].RoundTo(scale, mode)
			return s.report(cmd.OutOrStdout(), result{Op: name, Operands: operands, Result: z})
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 0, "number of digits after the decimal point, negative to round to tens, hundreds and so on")
	return cmd
}

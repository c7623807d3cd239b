package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"samplecalc/internal/calc"
)

func parseInts(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Errorf("invalid number: %s", arg)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// intCmd builds a command taking exactly n integer arguments.
func intCmd(use, short string, n int, run func(cmd *cobra.Command, nums []int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			return run(cmd, nums)
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return intCmd("add A B", "Add two non-negative integers", 2, func(cmd *cobra.Command, n []int) error {
		sum, err := a.calc.Add(n[0], n[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sum)
		return nil
	})
}

func (a *app) subtractCmd() *cobra.Command {
	return intCmd("subtract A B", "Subtract B from A", 2, func(cmd *cobra.Command, n []int) error {
		fmt.Fprintln(cmd.OutOrStdout(), a.calc.Subtract(n[0], n[1]))
		return nil
	})
}

func (a *app) multiplyCmd() *cobra.Command {
	return intCmd("multiply A B", "Multiply A by B using repeated addition", 2, func(cmd *cobra.Command, n []int) error {
		fmt.Fprintln(cmd.OutOrStdout(), a.calc.Multiply(n[0], n[1]))
		return nil
	})
}

func (a *app) divideCmd() *cobra.Command {
	return intCmd("divide A B", "Divide A by B", 2, func(cmd *cobra.Command, n []int) error {
		q, err := a.calc.Divide(n[0], n[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(q, 'g', -1, 64))
		return nil
	})
}

func (a *app) factorialCmd() *cobra.Command {
	return intCmd("factorial N", "Print N!", 1, func(cmd *cobra.Command, n []int) error {
		fmt.Fprintln(cmd.OutOrStdout(), calc.Factorial(n[0]))
		return nil
	})
}

func (a *app) fibonacciCmd() *cobra.Command {
	return intCmd("fibonacci N", "Print the Nth Fibonacci number", 1, func(cmd *cobra.Command, n []int) error {
		fmt.Fprintln(cmd.OutOrStdout(), calc.Fibonacci(n[0]))
		return nil
	})
}

func (a *app) evenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "even N...",
		Short: "Report whether each number is even",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			for _, n := range nums {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %t\n", n, calc.IsEven(n))
			}
			return nil
		},
	}
}

func (a *app) mixCmd() *cobra.Command {
	return intCmd("mix X Y Z", "Run the mixed branch/loop/switch computation", 3, func(cmd *cobra.Command, n []int) error {
		fmt.Fprintln(cmd.OutOrStdout(), calc.Mix(n[0], n[1], n[2]))
		return nil
	})
}

func (a *app) adderCmd() *cobra.Command {
	return intCmd("adder X Z", "Print (X + Z) * 2 via a closure over X", 2, func(cmd *cobra.Command, n []int) error {
		fmt.Fprintln(cmd.OutOrStdout(), calc.Adder(n[0])(n[1]))
		return nil
	})
}

func (a *app) chooseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choose COND A B",
		Short: "Print A when COND is true, otherwise B",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cond, err := strconv.ParseBool(args[0])
			if err != nil {
				return errors.Errorf("invalid condition: %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), calc.Choose(cond, args[1], args[2]))
			return nil
		},
	}
}

// mapFuncs are the functions the map command can apply
var mapFuncs = map[string]func(int) string{
	"factorial": func(n int) string { return strconv.Itoa(calc.Factorial(n)) },
	"fibonacci": func(n int) string { return strconv.Itoa(calc.Fibonacci(n)) },
	"even":      func(n int) string { return strconv.FormatBool(calc.IsEven(n)) },
	"double":    func(n int) string { return strconv.Itoa(calc.Adder(0)(n)) },
}

func (a *app) mapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map FUNC VALUE...",
		Short: "Apply factorial, fibonacci, even or double to each value, skipping bad input",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := mapFuncs[args[0]]
			if !ok {
				return errors.Errorf("unknown function: %s", args[0])
			}
			results := calc.Process(args[1:], func(s string) (string, error) {
				n, err := strconv.Atoi(s)
				if err != nil {
					return "", errors.Errorf("invalid number: %s", s)
				}
				return fn(n), nil
			}, a.log)
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// build info never depends on config
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calc %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		},
	}
}

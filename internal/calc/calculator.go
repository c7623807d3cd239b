package calc

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNegativeOperand is returned by Add when either operand is below zero.
	ErrNegativeOperand = errors.New("negative numbers not allowed")
	// ErrDivisionByZero is returned by Divide for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

// Calculator performs integer arithmetic and counts the operations it completes.
type Calculator struct {
	name string
	ops  Counter
	log  logrus.FieldLogger
}

// NewCalculator creates a calculator with the given name. A nil logger discards output.
func NewCalculator(name string, log logrus.FieldLogger) *Calculator {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Calculator{
		name: name,
		log:  log.WithField("calculator", name),
	}
}

// Name returns the calculator name
func (c *Calculator) Name() string {
	return c.name
}

// Operations returns how many operations have completed successfully.
func (c *Calculator) Operations() int64 {
	return c.ops.Value()
}

// Add returns a + b. Negative operands are rejected.
func (c *Calculator) Add(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, errors.Wrapf(ErrNegativeOperand, "add %d and %d", a, b)
	}
	return c.record("add", a, b, a+b), nil
}

// Subtract returns a - b.
func (c *Calculator) Subtract(a, b int) int {
	return c.record("subtract", a, b, a-b)
}

// Multiply computes a * b by repeated addition, looping over the operand with the
// smaller magnitude. Overflow wraps exactly like native multiplication.
func (c *Calculator) Multiply(a, b int) int {
	x, y := a, b
	if magnitude(x) < magnitude(y) {
		x, y = y, x
	}
	result := 0
	for i := uint(0); i < magnitude(y); i++ {
		result += x
	}
	if y < 0 {
		result = -result
	}
	return c.record("multiply", a, b, result)
}

// magnitude returns |n| without overflowing on math.MinInt.
func magnitude(n int) uint {
	if n < 0 {
		return -uint(n)
	}
	return uint(n)
}

// Divide returns a / b as a float. A zero divisor is rejected.
func (c *Calculator) Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "divide %d by %d", a, b)
	}
	result := float64(a) / float64(b)
	c.ops.Increment()
	c.log.WithFields(logrus.Fields{"op": "divide", "a": a, "b": b, "result": result}).Debug("operation complete")
	return result, nil
}

func (c *Calculator) record(op string, a, b, result int) int {
	n := c.ops.Increment()
	c.log.WithFields(logrus.Fields{
		"op":     op,
		"a":      a,
		"b":      b,
		"result": result,
		"count":  n,
	}).Debug("operation complete")
	return result
}

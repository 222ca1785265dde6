package suite

import (
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/mcalc/internal/calcerr"
)

const DefaultTolerance = 1e-9

type Suite struct {
	Name        string     `yaml:"name" schema:"required,minLength=1"`
	Description string     `yaml:"description,omitempty"`
	Version     string     `yaml:"version,omitempty"`
	Templates   []Template `yaml:"templates,omitempty"`
	Cases       []Case     `yaml:"cases" schema:"required,minItems=1"`
}

// Case is one expression with either an expected value or an expected error
// kind. The expression is given inline or rendered from a suite template.
type Case struct {
	ID          string   `yaml:"id" schema:"required,minLength=1"`
	Description string   `yaml:"description,omitempty"`
	Expression  *string  `yaml:"expression,omitempty" description:"Expression text, may be empty"`
	Template    string   `yaml:"template,omitempty" description:"Id of a suite template to render instead of expression"`
	Params      Params   `yaml:"params,omitempty"`
	Expect      *float64 `yaml:"expect,omitempty" description:"Expected value; .inf, -.inf and .nan are allowed"`
	Error       string   `yaml:"error,omitempty" schema:"enum=invalid_character|too_many_tokens|input_too_long|unexpected_token|unexpected_end_of_input|division_by_zero"`
	Tolerance   float64  `yaml:"tolerance,omitempty" description:"Absolute tolerance for expect"`
}

// Input returns the expression text; an absent expression reads as "".
func (c *Case) Input() string {
	if c.Expression == nil {
		return ""
	}
	return *c.Expression
}

// ExpectedKind returns the error kind the case expects, or calcerr.None.
func (c *Case) ExpectedKind() calcerr.Kind {
	if c.Error == "" {
		return calcerr.None
	}
	k, err := calcerr.ParseKind(c.Error)
	if err != nil {
		return calcerr.None
	}
	return k
}

func (c *Case) tolerance() float64 {
	if c.Tolerance > 0 {
		return c.Tolerance
	}
	return DefaultTolerance
}

// Verify checks an evaluation outcome against the case. A nil return means the case passed.
func (c *Case) Verify(value float64, err error) error {
	if want := c.ExpectedKind(); want != calcerr.None {
		got := calcerr.KindOf(err)
		if err == nil {
			return fmt.Errorf("expected error %s, got result %v", want, value)
		}
		if got != want {
			return fmt.Errorf("expected error %s, got %s", want, got)
		}
		return nil
	}

	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	if c.Expect == nil {
		return nil
	}
	if !closeEnough(*c.Expect, value, c.tolerance()) {
		return fmt.Errorf("expected %v, got %v", *c.Expect, value)
	}
	return nil
}

func closeEnough(want, got, tol float64) bool {
	switch {
	case math.IsNaN(want) || math.IsNaN(got):
		return math.IsNaN(want) && math.IsNaN(got)
	case math.IsInf(want, 0) || math.IsInf(got, 0):
		return want == got
	default:
		return math.Abs(want-got) <= tol
	}
}

package calc

import (
	"github.com/DjordjeVuckovic/mcalc/internal/ast"
	"github.com/DjordjeVuckovic/mcalc/internal/parser"
	"github.com/DjordjeVuckovic/mcalc/internal/token"
)

// Evaluator runs the tokenize, parse and eval pipeline. It keeps no state
// between calls and is safe for concurrent use.
type Evaluator struct {
	tokenizer token.Tokenizer
	division  ast.Division
}

type Option func(*evaluatorOptions)

type evaluatorOptions struct {
	tokenizer     token.Tokenizer
	tokenizerOpts []token.Option
	division      ast.Division
}

func WithMaxTokens(n int) Option {
	return func(o *evaluatorOptions) {
		o.tokenizerOpts = append(o.tokenizerOpts, token.WithMaxTokens(n))
	}
}

func WithMaxInputLength(n int) Option {
	return func(o *evaluatorOptions) {
		o.tokenizerOpts = append(o.tokenizerOpts, token.WithMaxInputLength(n))
	}
}

func WithDivision(d ast.Division) Option {
	return func(o *evaluatorOptions) {
		o.division = d
	}
}

// WithTokenizer replaces the default tokenizer; token limit options are then ignored.
func WithTokenizer(t token.Tokenizer) Option {
	return func(o *evaluatorOptions) {
		o.tokenizer = t
	}
}

func New(opts ...Option) *Evaluator {
	o := evaluatorOptions{division: ast.DivideStrict}
	for _, opt := range opts {
		opt(&o)
	}

	tokenizer := o.tokenizer
	if tokenizer == nil {
		tokenizer = token.NewCalcTokenizer(o.tokenizerOpts...)
	}

	return &Evaluator{
		tokenizer: tokenizer,
		division:  o.division,
	}
}

// NewFromConfig builds an Evaluator with the limits and policy in cfg.
func NewFromConfig(cfg Config) *Evaluator {
	return New(
		WithMaxTokens(cfg.MaxTokens),
		WithMaxInputLength(cfg.MaxInputLength),
		WithDivision(cfg.Division),
	)
}

// Evaluate returns the value of expr. On failure the value is 0 and the error
// is a *calcerr.Error; use calcerr.KindOf to classify it.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	tokens, err := e.tokenizer.Tokenize(expr)
	if err != nil {
		return 0, err
	}

	v, err := parser.Evaluate(tokens, e.division)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Tokens exposes the lexer stage for diagnostics.
func (e *Evaluator) Tokens(expr string) ([]token.Token, error) {
	return e.tokenizer.Tokenize(expr)
}

// Parse returns the expression tree of expr without evaluating it.
func (e *Evaluator) Parse(expr string) (ast.Node, error) {
	tokens, err := e.tokenizer.Tokenize(expr)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

func (e *Evaluator) Division() ast.Division {
	return e.division
}

var defaultEvaluator = New()

// Evaluate evaluates expr with the default limits and strict division.
func Evaluate(expr string) (float64, error) {
	return defaultEvaluator.Evaluate(expr)
}

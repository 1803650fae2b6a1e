package condition

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Condition filters input records before they reach the aggregator.
type Condition interface {
	Evaluate(env interface{}) bool
}

// ExprCondition is a Condition backed by a compiled expr-lang program.
type ExprCondition struct {
	program *vm.Program
}

// NewExprCondition compiles a boolean filter expression. Besides the
// expr-lang builtins it registers like_match for SQL LIKE patterns and
// is_null/not_null helpers, and tolerates fields absent from a record.
func NewExprCondition(expression string) (Condition, error) {
	options := []expr.Option{
		expr.Function("like_match", func(params ...any) (any, error) {
			if len(params) != 2 {
				return false, fmt.Errorf("like_match requires 2 parameters")
			}
			text, ok1 := params[0].(string)
			pattern, ok2 := params[1].(string)
			if !ok1 || !ok2 {
				return false, fmt.Errorf("like_match requires string parameters")
			}
			return matchesLikePattern(text, pattern), nil
		}),
		expr.Function("is_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_null requires 1 parameter")
			}
			return params[0] == nil, nil
		}),
		expr.Function("not_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("not_null requires 1 parameter")
			}
			return params[0] != nil, nil
		}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}
	return &ExprCondition{program: program}, nil
}

// Evaluate runs the compiled filter against a record. Evaluation errors
// count as a non-match.
func (ec *ExprCondition) Evaluate(env interface{}) bool {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false
	}
	matched, ok := result.(bool)
	return ok && matched
}

// matchesLikePattern matches text against a SQL LIKE pattern where %
// matches any character sequence and _ matches exactly one character.
// Greedy two-pointer matching with backtracking to the last %.
func matchesLikePattern(text, pattern string) bool {
	ti, pi := 0, 0
	starPi, starTi := -1, 0

	for ti < len(text) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '_' || pattern[pi] == text[ti]):
			ti++
			pi++
		case pi < len(pattern) && pattern[pi] == '%':
			starPi = pi
			starTi = ti
			pi++
		case starPi >= 0:
			// Let the last % swallow one more character.
			starTi++
			ti = starTi
			pi = starPi + 1
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '%' {
		pi++
	}
	return pi == len(pattern)
}

package sbml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sclamons/bioscrape-distr/model/expr"
)

// ErrUnsupportedMathOperator is returned when a kinetic law's MathML uses
// an operator outside the fixed catalog the native rate grammar supports
// (spec §4.1: "user-defined function primitives beyond a fixed catalog"
// is a Non-goal; the SBML subset inherits the same restriction).
type ErrUnsupportedMathOperator struct{ Operator string }

func (e *ErrUnsupportedMathOperator) Error() string {
	return fmt.Sprintf("sbml: unsupported MathML operator %q", e.Operator)
}

// mathASTNode is an intermediate tree between content-MathML and the
// native rate grammar, kept separate from expr.rawNode so this package
// never reaches into model/expr internals (SPEC_FULL.md §C.6).
type mathASTNode interface {
	render(isParam func(string) bool) string
}

type mathNum struct{ v float64 }

func (n *mathNum) render(func(string) bool) string {
	return strconv.FormatFloat(n.v, 'g', -1, 64)
}

type mathVar struct{ name string }

func (n *mathVar) render(isParam func(string) bool) string {
	if isParam(n.name) {
		return expr.InternalParameterPrefix + n.name
	}
	return n.name
}

type mathBinary struct {
	op          string
	left, right mathASTNode
}

func (n *mathBinary) render(isParam func(string) bool) string {
	return "(" + n.left.render(isParam) + " " + n.op + " " + n.right.render(isParam) + ")"
}

type mathUnary struct {
	op string
	x  mathASTNode
}

func (n *mathUnary) render(isParam func(string) bool) string {
	if n.op == "neg" {
		return "-(" + n.x.render(isParam) + ")"
	}
	return n.op + "(" + n.x.render(isParam) + ")"
}

type mathNAry struct {
	op   string
	args []mathASTNode
}

func (n *mathNAry) render(isParam func(string) bool) string {
	rendered := make([]string, len(n.args))
	for i, a := range n.args {
		rendered[i] = a.render(isParam)
	}
	sep := " + "
	if n.op == "times" {
		sep = " * "
	}
	return "(" + strings.Join(rendered, sep) + ")"
}

// parseMathML converts one <math> subtree into a mathASTNode, understanding
// the same operator set as the native rate grammar (spec §4.1, §4.8).
func parseMathML(e mathElement) (mathASTNode, error) {
	switch e.XMLName.Local {
	case "math":
		if len(e.Children) != 1 {
			return nil, &ErrUnsupportedMathOperator{Operator: "math: expected exactly one child expression"}
		}
		return parseMathML(e.Children[0])
	case "apply":
		return parseApply(e)
	case "ci":
		return &mathVar{name: strings.TrimSpace(e.Chardata)}, nil
	case "cn":
		v, err := strconv.ParseFloat(strings.TrimSpace(e.Chardata), 64)
		if err != nil {
			return nil, fmt.Errorf("sbml: invalid <cn> value %q: %w", e.Chardata, err)
		}
		return &mathNum{v: v}, nil
	default:
		return nil, &ErrUnsupportedMathOperator{Operator: e.XMLName.Local}
	}
}

func parseApply(e mathElement) (mathASTNode, error) {
	if len(e.Children) == 0 {
		return nil, &ErrUnsupportedMathOperator{Operator: "apply: missing operator"}
	}
	opTag := e.Children[0].XMLName.Local
	operands := e.Children[1:]

	parseAll := func(nodes []mathElement) ([]mathASTNode, error) {
		out := make([]mathASTNode, len(nodes))
		for i, n := range nodes {
			parsed, err := parseMathML(n)
			if err != nil {
				return nil, err
			}
			out[i] = parsed
		}
		return out, nil
	}

	switch opTag {
	case "plus", "times":
		args, err := parseAll(operands)
		if err != nil {
			return nil, err
		}
		return &mathNAry{op: opTag, args: args}, nil
	case "minus":
		args, err := parseAll(operands)
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return &mathUnary{op: "neg", x: args[0]}, nil
		}
		if len(args) == 2 {
			return &mathBinary{op: "-", left: args[0], right: args[1]}, nil
		}
		return nil, &ErrUnsupportedMathOperator{Operator: "minus: expected 1 or 2 operands"}
	case "divide":
		args, err := parseAll(operands)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, &ErrUnsupportedMathOperator{Operator: "divide: expected 2 operands"}
		}
		return &mathBinary{op: "/", left: args[0], right: args[1]}, nil
	case "power":
		args, err := parseAll(operands)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, &ErrUnsupportedMathOperator{Operator: "power: expected 2 operands"}
		}
		return &mathBinary{op: "^", left: args[0], right: args[1]}, nil
	case "exp", "abs":
		args, err := parseAll(operands)
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, &ErrUnsupportedMathOperator{Operator: opTag + ": expected 1 operand"}
		}
		return &mathUnary{op: opTag, x: args[0]}, nil
	case "ln":
		args, err := parseAll(operands)
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, &ErrUnsupportedMathOperator{Operator: "ln: expected 1 operand"}
		}
		return &mathUnary{op: "log", x: args[0]}, nil
	default:
		return nil, &ErrUnsupportedMathOperator{Operator: opTag}
	}
}

// RenderMathML stringifies a parsed <math> subtree into the native rate
// grammar (model/expr.Parse's input), rewriting any identifier that names
// a known parameter with the internal parameter prefix (spec §4.8:
// "every identifier matching a known parameter name is rewritten").
func RenderMathML(e mathElement, isParam func(name string) bool) (string, error) {
	ast, err := parseMathML(e)
	if err != nil {
		return "", err
	}
	return ast.render(isParam), nil
}

package tool

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Calculator evaluates arithmetic expressions. It parses the expression
// itself instead of delegating to an interpreter, so only the operators and
// functions listed in the description are reachable.
type Calculator struct{}

// NewCalculator creates a calculator tool.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Name returns the name of the tool.
func (c *Calculator) Name() string {
	return "calculator"
}

// Description returns the description of the tool.
func (c *Calculator) Description() string {
	return "Performs mathematical calculations. Input should be a valid mathematical expression " +
		"using + - * / parentheses, the constants pi and e, and the functions " +
		"sqrt, sin, cos, tan, abs, round, pow, min, max."
}

// Call evaluates the expression and returns "Result: <value>".
func (c *Calculator) Call(ctx context.Context, input string) (string, error) {
	v, err := evalExpression(input)
	if err != nil {
		return "", fmt.Errorf("error calculating %q: %w", input, err)
	}
	return "Result: " + strconv.FormatFloat(v, 'g', -1, 64), nil
}

// evalExpression parses and evaluates with the grammar
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/') unary)*
//	unary   := '-' unary | primary
//	primary := number | name | name '(' expr (',' expr)* ')' | '(' expr ')'
func evalExpression(input string) (float64, error) {
	p := &exprParser{input: input}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *exprParser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		ch, ok := p.peek()
		if !ok || (ch != '+' && ch != '-') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if ch == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		ch, ok := p.peek()
		if !ok || (ch != '*' && ch != '/') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if ch == '*' {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= rhs
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	ch, ok := p.peek()
	if ok && ch == '-' {
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (float64, error) {
	ch, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	switch {
	case ch == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(')'); err != nil {
			return 0, err
		}
		return v, nil

	case ch >= '0' && ch <= '9' || ch == '.':
		return p.parseNumber()

	case unicode.IsLetter(rune(ch)):
		return p.parseNameOrCall()

	default:
		return 0, fmt.Errorf("unexpected %q at position %d", ch, p.pos)
	}
}

func (p *exprParser) expect(ch byte) error {
	got, ok := p.peek()
	if !ok || got != ch {
		return fmt.Errorf("expected %q at position %d", ch, p.pos)
	}
	p.pos++
	return nil
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if (ch >= '0' && ch <= '9') || ch == '.' {
			p.pos++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return v, nil
}

func (p *exprParser) parseNameOrCall() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (unicode.IsLetter(rune(p.input[p.pos])) || unicode.IsDigit(rune(p.input[p.pos]))) {
		p.pos++
	}
	name := strings.ToLower(p.input[start:p.pos])

	if ch, ok := p.peek(); !ok || ch != '(' {
		switch name {
		case "pi":
			return math.Pi, nil
		case "e":
			return math.E, nil
		default:
			return 0, fmt.Errorf("unknown constant %q", name)
		}
	}

	p.pos++ // consume '('
	args := []float64{}
	if ch, ok := p.peek(); !ok || ch != ')' {
		for {
			v, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			args = append(args, v)
			ch, ok := p.peek()
			if ok && ch == ',' {
				p.pos++
				continue
			}
			break
		}
	}
	if err := p.expect(')'); err != nil {
		return 0, err
	}
	return applyFunc(name, args)
}

func applyFunc(name string, args []float64) (float64, error) {
	oneArg := map[string]func(float64) float64{
		"sqrt":  math.Sqrt,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"abs":   math.Abs,
		"round": math.Round,
	}
	if fn, ok := oneArg[name]; ok {
		if len(args) != 1 {
			return 0, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		return fn(args[0]), nil
	}

	twoArgs := map[string]func(float64, float64) float64{
		"pow": math.Pow,
		"min": math.Min,
		"max": math.Max,
	}
	if fn, ok := twoArgs[name]; ok {
		if len(args) != 2 {
			return 0, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
		}
		return fn(args[0], args[1]), nil
	}

	return 0, fmt.Errorf("unknown function %q", name)
}

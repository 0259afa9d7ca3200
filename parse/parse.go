package parse

import (
	"encoding/json"
	"fmt"

	"github.com/confvar/confvar/ir"
	"github.com/confvar/confvar/token"
)

// Parse parses a single JSON value from d, retaining the source byte span of
// every node. Trailing non-whitespace input is an error.
func Parse(d []byte) (*ir.Node, error) {
	toks, pd, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	i := 0
	res, err := parseValue(d, toks, &i, pd)
	if err != nil {
		return nil, err
	}
	if i != len(toks) {
		return nil, fmt.Errorf("%w: trailing input %s", ErrParse, pd.Pos(toks[i].Off))
	}
	return res, nil
}

func parseValue(d []byte, toks []token.Token, pi *int, pd *token.PosDoc) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TString:
		return parseString(d, toks, pi, pd)

	case token.TNumber:
		*pi++
		return &ir.Node{
			Type:   ir.NumberType,
			Off:    t.Off,
			End:    t.End,
			Number: t.Text(d),
		}, nil

	case token.TTrue, token.TFalse:
		*pi++
		return &ir.Node{
			Type: ir.BoolType,
			Off:  t.Off,
			End:  t.End,
			Bool: t.Type == token.TTrue,
		}, nil

	case token.TNull:
		*pi++
		return &ir.Node{Type: ir.NullType, Off: t.Off, End: t.End}, nil

	case token.TLCurl:
		return parseObject(d, toks, pi, pd)

	case token.TLSquare:
		return parseArray(d, toks, pi, pd)

	default:
		return nil, fmt.Errorf("%w: unexpected %s %s", ErrParse, t.Type, pd.Pos(t.Off))
	}
}

func parseString(d []byte, toks []token.Token, pi *int, pd *token.PosDoc) (*ir.Node, error) {
	t := &toks[*pi]
	var s string
	if err := json.Unmarshal(d[t.Off:t.End], &s); err != nil {
		return nil, fmt.Errorf("%w: bad string %s: %w", ErrParse, pd.Pos(t.Off), err)
	}
	*pi++
	return &ir.Node{
		Type:   ir.StringType,
		Off:    t.Off,
		End:    t.End,
		String: s,
	}, nil
}

func parseObject(d []byte, toks []token.Token, pi *int, pd *token.PosDoc) (*ir.Node, error) {
	open := &toks[*pi]
	if open.Type != token.TLCurl {
		return nil, fmt.Errorf("%w: expected object %s", errInternal, pd.Pos(open.Off))
	}
	*pi++
	res := &ir.Node{Type: ir.ObjectType, Off: open.Off}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated object %s", ErrParse, pd.Pos(open.Off))
		}
		t := &toks[*pi]
		if t.Type == token.TRCurl {
			if len(res.Fields) != 0 {
				return nil, fmt.Errorf("%w: trailing comma %s", ErrParse, pd.Pos(t.Off))
			}
			*pi++
			res.End = t.End
			return res, nil
		}
		if t.Type != token.TString {
			return nil, fmt.Errorf("%w: expected object key %s", ErrParse, pd.Pos(t.Off))
		}
		key, err := parseString(d, toks, pi, pd)
		if err != nil {
			return nil, err
		}
		if *pi >= len(toks) || toks[*pi].Type != token.TColon {
			return nil, fmt.Errorf("%w: expected ':' after key %q %s", ErrParse, key.String, pd.Pos(key.End))
		}
		*pi++
		val, err := parseValue(d, toks, pi, pd)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, val)
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated object %s", ErrParse, pd.Pos(open.Off))
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			res.End = toks[*pi].End
			*pi++
			return res, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or '}' %s", ErrParse, pd.Pos(toks[*pi].Off))
		}
	}
}

func parseArray(d []byte, toks []token.Token, pi *int, pd *token.PosDoc) (*ir.Node, error) {
	open := &toks[*pi]
	if open.Type != token.TLSquare {
		return nil, fmt.Errorf("%w: expected array %s", errInternal, pd.Pos(open.Off))
	}
	*pi++
	res := &ir.Node{Type: ir.ArrayType, Off: open.Off}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated array %s", ErrParse, pd.Pos(open.Off))
		}
		t := &toks[*pi]
		if t.Type == token.TRSquare {
			if len(res.Values) != 0 {
				return nil, fmt.Errorf("%w: trailing comma %s", ErrParse, pd.Pos(t.Off))
			}
			*pi++
			res.End = t.End
			return res, nil
		}
		val, err := parseValue(d, toks, pi, pd)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated array %s", ErrParse, pd.Pos(open.Off))
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			res.End = toks[*pi].End
			*pi++
			return res, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']' %s", ErrParse, pd.Pos(toks[*pi].Off))
		}
	}
}

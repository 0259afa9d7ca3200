package token

import (
	"fmt"
)

// Tokenize scans d into tokens. The returned PosDoc maps byte offsets in d
// to line/column positions for error reporting.
func Tokenize(d []byte) ([]Token, *PosDoc, error) {
	pd := NewPosDoc(d)
	var toks []Token
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '{':
			toks = append(toks, Token{Type: TLCurl, Off: i, End: i + 1})
			i++
		case c == '}':
			toks = append(toks, Token{Type: TRCurl, Off: i, End: i + 1})
			i++
		case c == '[':
			toks = append(toks, Token{Type: TLSquare, Off: i, End: i + 1})
			i++
		case c == ']':
			toks = append(toks, Token{Type: TRSquare, Off: i, End: i + 1})
			i++
		case c == ':':
			toks = append(toks, Token{Type: TColon, Off: i, End: i + 1})
			i++
		case c == ',':
			toks = append(toks, Token{Type: TComma, Off: i, End: i + 1})
			i++
		case c == '"':
			end, err := scanString(d, i, pd)
			if err != nil {
				return nil, pd, err
			}
			toks = append(toks, Token{Type: TString, Off: i, End: end})
			i = end
		case c == '-' || (c >= '0' && c <= '9'):
			end, err := scanNumber(d, i, pd)
			if err != nil {
				return nil, pd, err
			}
			toks = append(toks, Token{Type: TNumber, Off: i, End: end})
			i = end
		case c == 't':
			end, err := scanKeyword(d, i, "true", pd)
			if err != nil {
				return nil, pd, err
			}
			toks = append(toks, Token{Type: TTrue, Off: i, End: end})
			i = end
		case c == 'f':
			end, err := scanKeyword(d, i, "false", pd)
			if err != nil {
				return nil, pd, err
			}
			toks = append(toks, Token{Type: TFalse, Off: i, End: end})
			i = end
		case c == 'n':
			end, err := scanKeyword(d, i, "null", pd)
			if err != nil {
				return nil, pd, err
			}
			toks = append(toks, Token{Type: TNull, Off: i, End: end})
			i = end
		default:
			return nil, pd, fmt.Errorf("%w: unexpected byte %q %s", ErrToken, c, pd.Pos(i))
		}
	}
	return toks, pd, nil
}

func scanString(d []byte, i int, pd *PosDoc) (int, error) {
	j := i + 1
	n := len(d)
	for j < n {
		switch d[j] {
		case '\\':
			if j+1 >= n {
				return 0, fmt.Errorf("%w: unterminated escape %s", ErrToken, pd.Pos(j))
			}
			j += 2
		case '"':
			return j + 1, nil
		case '\n':
			return 0, fmt.Errorf("%w: newline in string %s", ErrToken, pd.Pos(j))
		default:
			j++
		}
	}
	return 0, fmt.Errorf("%w: unterminated string %s", ErrToken, pd.Pos(i))
}

func scanNumber(d []byte, i int, pd *PosDoc) (int, error) {
	j := i
	n := len(d)
	if d[j] == '-' {
		j++
	}
	start := j
	for j < n && d[j] >= '0' && d[j] <= '9' {
		j++
	}
	if j == start {
		return 0, fmt.Errorf("%w: malformed number %s", ErrToken, pd.Pos(i))
	}
	if j < n && d[j] == '.' {
		j++
		fracStart := j
		for j < n && d[j] >= '0' && d[j] <= '9' {
			j++
		}
		if j == fracStart {
			return 0, fmt.Errorf("%w: malformed number %s", ErrToken, pd.Pos(i))
		}
	}
	if j < n && (d[j] == 'e' || d[j] == 'E') {
		j++
		if j < n && (d[j] == '+' || d[j] == '-') {
			j++
		}
		expStart := j
		for j < n && d[j] >= '0' && d[j] <= '9' {
			j++
		}
		if j == expStart {
			return 0, fmt.Errorf("%w: malformed number %s", ErrToken, pd.Pos(i))
		}
	}
	return j, nil
}

func scanKeyword(d []byte, i int, kw string, pd *PosDoc) (int, error) {
	if i+len(kw) > len(d) || string(d[i:i+len(kw)]) != kw {
		return 0, fmt.Errorf("%w: unexpected literal %s", ErrToken, pd.Pos(i))
	}
	return i + len(kw), nil
}

package token

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// Token is one lexical element of a JSON document. [Off, End) is the exact
// byte range of the token in the input, escapes and all.
type Token struct {
	Type TokenType
	Off  int
	End  int
}

// Text returns the verbatim source text of the token within d.
func (t *Token) Text(d []byte) string {
	return string(d[t.Off:t.End])
}

package exprlang

import "encoding/json"

// jsonExpr is the shadow encoding for Expr: a separate struct with json
// tags rather than hanging them directly off the domain types. Expr is
// a closed interface, so encoding/json needs a discriminator to make
// the dump legible and round-trippable by eye.
type jsonExpr struct {
	Type     string    `json:"type"`
	Value    any       `json:"value,omitempty"`
	Name     string    `json:"name,omitempty"`
	Op       string    `json:"op,omitempty"`
	Left     *jsonExpr `json:"left,omitempty"`
	Right    *jsonExpr `json:"right,omitempty"`
	Operand  *jsonExpr `json:"operand,omitempty"`
}

// MarshalJSON renders e as a tagged JSON object via buildJSONExpr, for
// `parsec eval --format json`.
func MarshalJSON(e Expr) ([]byte, error) {
	return json.MarshalIndent(buildJSONExpr(e), "", "  ")
}

func buildJSONExpr(e Expr) *jsonExpr {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case Num:
		return &jsonExpr{Type: "num", Value: v.Value}
	case Str:
		return &jsonExpr{Type: "str", Value: v.Value}
	case Ident:
		return &jsonExpr{Type: "ident", Name: v.Name}
	case BinOp:
		return &jsonExpr{
			Type:  "binop",
			Op:    string(v.Op),
			Left:  buildJSONExpr(v.Left),
			Right: buildJSONExpr(v.Right),
		}
	case Neg:
		return &jsonExpr{Type: "neg", Operand: buildJSONExpr(v.Operand)}
	default:
		return &jsonExpr{Type: "unknown"}
	}
}

package exprlang

import (
	"encoding/json"
	"testing"
)

func TestParseAndEvalArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want Value
	}{
		{"1 + 2 * 3", int64(7)},
		{"(1 + 2) * 3", int64(9)},
		{"10 / 2 - 3", int64(2)},
		{"2 * 3.5", 7.0},
		{"-5 + 3", int64(-2)},
		{"-(1 + 2)", int64(-3)},
	}
	for _, c := range cases {
		e, err := Parse(c.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.src, err)
		}
		got, evalErr := Eval(e, nil)
		if evalErr != nil {
			t.Fatalf("Eval(%q): %v", c.src, evalErr)
		}
		if got != c.want {
			t.Fatalf("Eval(%q) = %v (%T), want %v (%T)", c.src, got, got, c.want, c.want)
		}
	}
}

func TestParseIdentifierAndEnv(t *testing.T) {
	e, err := Parse("x * 2 + y")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, evalErr := Eval(e, Env{"x": int64(3), "y": int64(4)})
	if evalErr != nil {
		t.Fatalf("Eval: %v", evalErr)
	}
	if got != int64(10) {
		t.Fatalf("got %v, want 10", got)
	}
}

func TestParseStringLiteral(t *testing.T) {
	e, err := Parse(`"hello world"`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, evalErr := Eval(e, nil)
	if evalErr != nil {
		t.Fatalf("Eval: %v", evalErr)
	}
	if got != "hello world" {
		t.Fatalf("got %v", got)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	e, err := Parse("1 / 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := Eval(e, nil); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestEvalUndefinedIdentifier(t *testing.T) {
	e, err := Parse("missing")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := Eval(e, nil); err == nil {
		t.Fatal("expected undefined-identifier error")
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	if _, err := Parse("1 + 2 )"); err == nil {
		t.Fatal("expected error: unconsumed trailing input after a complete expression")
	}
}

func TestMarshalJSONTagsExpressionKind(t *testing.T) {
	e, err := Parse("1 + x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, marshalErr := MarshalJSON(e)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON: %v", marshalErr)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty JSON output")
	}
	var top map[string]any
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if top["type"] != "binop" {
		t.Fatalf("top-level type = %v, want binop", top["type"])
	}
}

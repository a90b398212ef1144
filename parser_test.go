package parsec

import (
	"testing"
)

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }

func runeInput(s string) Input[rune] {
	return NewSliceInput([]rune(s))
}

func TestSatisfySuccess(t *testing.T) {
	p := Satisfy(isDigitRune)
	c := p(runeInput("1abc"))
	if !c.Consumed {
		t.Fatalf("expected Consumed=true")
	}
	r := c.Reply()
	if !r.IsOk() {
		t.Fatalf("expected Ok, got error")
	}
	if r.Result != '1' {
		t.Errorf("Result = %q, want '1'", r.Result)
	}
	if r.Rest.Position() != 1 {
		t.Errorf("Rest.Position() = %d, want 1", r.Rest.Position())
	}
}

func TestSatisfyFailureDoesNotConsume(t *testing.T) {
	p := Satisfy(isDigitRune)
	c := p(runeInput("abc"))
	if c.Consumed {
		t.Fatalf("expected Consumed=false on failure")
	}
	r := c.Reply()
	if r.IsOk() {
		t.Fatalf("expected error")
	}
}

func TestSatisfyEndOfInput(t *testing.T) {
	p := Satisfy(isDigitRune)
	c := p(runeInput(""))
	if c.Consumed {
		t.Fatalf("expected Consumed=false at end of input")
	}
	r := c.Reply()
	if r.IsOk() {
		t.Fatalf("expected error at end of input")
	}
	if r.Msg.Unexpected != endOfInputMarker {
		t.Errorf("Unexpected = %q, want %q", r.Msg.Unexpected, endOfInputMarker)
	}
}

func TestRetnNeverConsumes(t *testing.T) {
	p := Retn[rune, int](42)
	c := p(runeInput("xyz"))
	if c.Consumed {
		t.Fatalf("expected Consumed=false")
	}
	r := c.Reply()
	if !r.IsOk() || r.Result != 42 {
		t.Fatalf("got %+v", r)
	}
	if r.Rest.Position() != 0 {
		t.Errorf("Rest.Position() = %d, want 0", r.Rest.Position())
	}
}

func TestBindMonadLawLeftIdentity(t *testing.T) {
	// bind(retn(x), f) ≡ f(x)
	f := func(n int) Parser[rune, int] { return Retn[rune, int](n * 2) }
	p1 := Bind(Retn[rune, int](21), f)
	p2 := f(21)
	in := runeInput("abc")
	r1 := p1(in).Reply()
	r2 := p2(in).Reply()
	if r1.Result != r2.Result || r1.IsOk() != r2.IsOk() {
		t.Fatalf("left identity violated: %+v vs %+v", r1, r2)
	}
}

func TestBindMonadLawRightIdentity(t *testing.T) {
	// bind(p, retn) ≡ p
	p := Satisfy(isDigitRune)
	bound := Bind(p, Retn[rune, rune])
	in := runeInput("9x")
	r1 := p(in).Reply()
	r2 := bound(in).Reply()
	if r1.Result != r2.Result || r1.IsOk() != r2.IsOk() || r1.Rest.Position() != r2.Rest.Position() {
		t.Fatalf("right identity violated: %+v vs %+v", r1, r2)
	}
}

func TestBindMonadLawAssociativity(t *testing.T) {
	f := func(n rune) Parser[rune, int] { return Retn[rune, int](int(n) + 1) }
	g := func(n int) Parser[rune, int] { return Retn[rune, int](n * 2) }
	p := Satisfy(isDigitRune)

	left := Bind(Bind(p, f), g)
	right := Bind(p, func(x rune) Parser[rune, int] { return Bind(f(x), g) })

	in := runeInput("3")
	r1 := left(in).Reply()
	r2 := right(in).Reply()
	if r1.Result != r2.Result {
		t.Fatalf("associativity violated: %d vs %d", r1.Result, r2.Result)
	}
}

func TestOrCommitsAfterConsuming(t *testing.T) {
	// or(attempt(string("foo")), string("for")) on "for" -> Ok("for")
	// without attempt, -> ConsumedError (demonstrates backtracking).
	withAttempt := Or(Attempt(stringLit("foo")), stringLit("for"))
	c := withAttempt(runeInput("for"))
	r := c.Reply()
	if !r.IsOk() || r.Result != "for" {
		t.Fatalf("with attempt: got %+v", r)
	}

	withoutAttempt := Or(stringLit("foo"), stringLit("for"))
	c2 := withoutAttempt(runeInput("for"))
	r2 := c2.Reply()
	if r2.IsOk() {
		t.Fatalf("without attempt: expected ConsumedError, got Ok")
	}
	if !c2.Consumed {
		t.Fatalf("without attempt: expected Consumed=true (committed after 'fo' matched)")
	}
}

// stringLit is a minimal inline string matcher used only by this test
// file, so the core package's tests don't depend on the text package.
func stringLit(value string) Parser[rune, string] {
	runes := []rune(value)
	return func(in Input[rune]) Consumed[rune, string] {
		cur := in
		for i, want := range runes {
			sym, ok := cur.Current()
			if !ok {
				msg := NewMessageEndOfInput[rune](cur.Position(), value)
				return consumedReplyFromFlag[rune, string](i > 0, func() Reply[rune, string] {
					return Err[rune, string](msg)
				})
			}
			if sym != want {
				msg := NewMessageUnexpected[rune](cur.Position(), string(sym), "\""+value+"\"")
				return consumedReplyFromFlag[rune, string](i > 0, func() Reply[rune, string] {
					return Err[rune, string](msg)
				})
			}
			cur = cur.Advance(1)
		}
		return consumedNow(Ok[rune, string](value, cur, NewMessage[rune](cur.Position())))
	}
}

func TestAttemptIdempotence(t *testing.T) {
	p := stringLit("foo")
	once := Attempt(p)
	twice := Attempt(Attempt(p))
	in := runeInput("fob")
	r1 := once(in).Reply()
	r2 := twice(in).Reply()
	if r1.IsOk() != r2.IsOk() {
		t.Fatalf("attempt idempotence violated: %+v vs %+v", r1, r2)
	}
	c1 := once(in)
	c2 := twice(in)
	if c1.Consumed != c2.Consumed {
		t.Fatalf("attempt idempotence violated on Consumed flag")
	}
}

func TestLabelReplacesExpectedSet(t *testing.T) {
	p := Label(Satisfy(isDigitRune), "digit")
	p2 := Label(p, "number")
	r := p2(runeInput("x")).Reply()
	if r.IsOk() {
		t.Fatalf("expected failure")
	}
	names := r.Msg.ExpectedNames()
	if len(names) != 1 || names[0] != "number" {
		t.Errorf("expected set = %v, want [number] (label replaces, not unions)", names)
	}
}

func TestManyCollectsInOrder(t *testing.T) {
	p := Many(Satisfy(isDigitRune))
	c := p(runeInput("123abc"))
	r := c.Reply()
	if !r.IsOk() {
		t.Fatalf("expected Ok")
	}
	if string(r.Result) != "123" {
		t.Errorf("Result = %q, want \"123\"", string(r.Result))
	}
	if r.Rest.Position() != 3 {
		t.Errorf("Rest.Position() = %d, want 3", r.Rest.Position())
	}
}

func TestManyOnNoMatchReturnsEmptyWithoutConsuming(t *testing.T) {
	p := Many(Satisfy(isDigitRune))
	c := p(runeInput("abc"))
	if c.Consumed {
		t.Fatalf("expected Consumed=false")
	}
	r := c.Reply()
	if !r.IsOk() || len(r.Result) != 0 {
		t.Fatalf("got %+v", r)
	}
}

func TestMany1RequiresOneMatch(t *testing.T) {
	p := Many1(Satisfy(isDigitRune))
	c := p(runeInput("abc"))
	r := c.Reply()
	if r.IsOk() {
		t.Fatalf("expected failure")
	}
}

func TestManyPropagatesConsumedErrorFromInsideLoop(t *testing.T) {
	// A parser that consumes one symbol then always fails: the first
	// iteration inside Many already yields a ConsumedError, which Many
	// must propagate rather than treating it as "no more matches".
	consumeThenFail := Bind(Satisfy(func(r rune) bool { return true }), func(rune) Parser[rune, rune] {
		return Fail[rune, rune]()
	})
	c := Many(consumeThenFail)(runeInput("ab"))
	r := c.Reply()
	if r.IsOk() {
		t.Fatalf("expected Many to propagate the inner ConsumedError")
	}
	if !c.Consumed {
		t.Fatalf("expected Consumed=true since input was advanced before failing")
	}
}

func TestChainl1LeftAssociative(t *testing.T) {
	// chainl1(intr, '+' then (a,b)->a+b) on "1+2+3" -> 6
	add := func(a, b int) int { return a + b }
	sub := func(a, b int) int { return a - b }
	num := Bind(Satisfy(isDigitRune), func(r rune) Parser[rune, int] {
		return Retn[rune, int](int(r - '0'))
	})
	plus := Then(SatisfyEq('+', "+"), Retn[rune, func(int, int) int](add))
	p := Chainl1(num, plus)
	r := p(runeInput("1+2+3")).Reply()
	if !r.IsOk() || r.Result != 6 {
		t.Fatalf("got %+v", r)
	}

	minus := Then(SatisfyEq('-', "-"), Retn[rune, func(int, int) int](sub))
	pl := Chainl1(num, minus)
	rl := pl(runeInput("1-2-3")).Reply()
	if !rl.IsOk() || rl.Result != (1-2)-3 {
		t.Fatalf("chainl1 left-assoc: got %+v, want %d", rl, (1-2)-3)
	}

	pr := Chainr1(num, minus)
	rr := pr(runeInput("1-2-3")).Reply()
	if !rr.IsOk() || rr.Result != 1-(2-3) {
		t.Fatalf("chainr1 right-assoc: got %+v, want %d", rr, 1-(2-3))
	}
}

func TestOrIdentityOnFailure(t *testing.T) {
	p := Satisfy(isDigitRune)
	left := Or(Fail[rune, rune](), p)
	right := Or(p, Fail[rune, rune]())
	in := runeInput("7")
	rl := left(in).Reply()
	rr := right(in).Reply()
	rp := p(in).Reply()
	if rl.Result != rp.Result || rr.Result != rp.Result {
		t.Fatalf("or identity violated: left=%+v right=%+v p=%+v", rl, rr, rp)
	}
}

func TestMessageMergeUnionsExpectedAtEqualPosition(t *testing.T) {
	a := NewMessageUnexpected[rune](3, "x", "digit")
	b := NewMessageUnexpected[rune](3, "x", "letter")
	m := MergeMessages(a, b)
	names := m.ExpectedNames()
	if len(names) != 2 || names[0] != "digit" || names[1] != "letter" {
		t.Errorf("ExpectedNames() = %v, want [digit letter]", names)
	}
}

func TestMessageMergeTakesLaterPosition(t *testing.T) {
	a := NewMessageUnexpected[rune](3, "x", "digit")
	b := NewMessageUnexpected[rune](5, "y", "letter")
	m := MergeMessages(a, b)
	if m.Position != 5 {
		t.Errorf("Position = %d, want 5", m.Position)
	}
	names := m.ExpectedNames()
	if len(names) != 1 || names[0] != "letter" {
		t.Errorf("ExpectedNames() = %v, want [letter]", names)
	}
}

func TestProgressInvariant(t *testing.T) {
	p := Satisfy(isDigitRune)
	in := runeInput("5x")
	c := p(in)
	r := c.Reply()
	if c.Consumed {
		if r.IsOk() && r.Rest.Position() <= in.Position() {
			t.Errorf("Consumed reply must advance position")
		}
	} else {
		if r.IsOk() && r.Rest.Position() != in.Position() {
			t.Errorf("Empty reply must not advance position")
		}
	}
}

func TestCountExactlyN(t *testing.T) {
	p := Count(Satisfy(isDigitRune), 3)
	r := p(runeInput("1234")).Reply()
	if !r.IsOk() || string(r.Result) != "123" {
		t.Fatalf("got %+v", r)
	}
	r0 := Count(Satisfy(isDigitRune), 0)(runeInput("abc")).Reply()
	if !r0.IsOk() || len(r0.Result) != 0 {
		t.Fatalf("Count(p, 0) should yield an empty slice without consuming, got %+v", r0)
	}
}

func TestSepByAndEndBy(t *testing.T) {
	digit := Satisfy(isDigitRune)
	comma := SatisfyEq(',', ",")

	sep := SepBy(digit, comma)
	r := sep(runeInput("1,2,3")).Reply()
	if !r.IsOk() || string(r.Result) != "123" {
		t.Fatalf("SepBy: got %+v", r)
	}

	end := EndBy(digit, comma)
	r2 := end(runeInput("1,2,3,")).Reply()
	if !r2.IsOk() || string(r2.Result) != "123" {
		t.Fatalf("EndBy: got %+v", r2)
	}

	sepEnd := SepEndBy(digit, comma)
	r3 := sepEnd(runeInput("1,2,3")).Reply()
	if !r3.IsOk() || string(r3.Result) != "123" {
		t.Fatalf("SepEndBy (no trailing sep): got %+v", r3)
	}
	r4 := sepEnd(runeInput("1,2,3,")).Reply()
	if !r4.IsOk() || string(r4.Result) != "123" {
		t.Fatalf("SepEndBy (trailing sep): got %+v", r4)
	}
}

func TestRefTiesRecursiveKnot(t *testing.T) {
	// balanced parens around a digit: '(' expr ')' | digit
	ref := NewRef[rune, rune]()
	digit := Satisfy(isDigitRune)
	parenthesized := Between(SatisfyEq('(', "("), SatisfyEq(')', ")"), ref.Parser())
	ref.Set(Or(digit, parenthesized))

	r := ref.Parser()(runeInput("((7))")).Reply()
	if !r.IsOk() || r.Result != '7' {
		t.Fatalf("got %+v", r)
	}
}

func TestRefPanicsBeforeSet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when using an unset Ref")
		}
	}()
	ref := NewRef[rune, rune]()
	ref.Parser()(runeInput("x"))
}

func TestParseRequiresEof(t *testing.T) {
	digit := Satisfy(isDigitRune)
	_, err := Parse[rune, rune](digit, runeInput("1x"))
	if err == nil {
		t.Fatalf("expected error: trailing input after successful parse")
	}
	v, err := Parse[rune, rune](digit, runeInput("1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != '1' {
		t.Errorf("got %q, want '1'", v)
	}
}

package command

import "testing"

func TestTokenizeBangAndWhitespace(t *testing.T) {
	tokens := Tokenize("  cmd0!  ")
	if len(tokens) != 2 {
		t.Fatalf("Tokenize() = %v, want 2 tokens", tokens)
	}
	if tokens[0].Kind != TokenText || tokens[0].Text != "cmd0" {
		t.Errorf("tokens[0] = %+v", tokens[0])
	}
	if tokens[1].Kind != TokenBang {
		t.Errorf("tokens[1] = %+v, want Bang", tokens[1])
	}
}

func TestTokenizeBracketedArgs(t *testing.T) {
	tokens := Tokenize("c  [aaa][bbb]ccc  ")
	if len(tokens) != 4 {
		t.Fatalf("Tokenize() = %v, want 4 tokens", tokens)
	}
	want := []string{"c", "aaa", "bbb", "ccc"}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("tokens[%d].Text = %q, want %q", i, tokens[i].Text, w)
		}
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	tokens := Tokenize("c 0 1 'abc")
	last := tokens[len(tokens)-1]
	if last.Kind != TokenUnterminated || last.Text != "abc" {
		t.Fatalf("last token = %+v, want Unterminated(abc)", last)
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := r.Register(Spec{Name: "cmd0", BangUsage: "force"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(Spec{Name: "c", Params: []string{"a", "b", "c"}}); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestParseBangNoArgs(t *testing.T) {
	r := newTestRegistry(t)
	cmd, perr := Parse("  cmd0!  ", r)
	if perr != nil {
		t.Fatalf("Parse() error = %v", perr)
	}
	if cmd.Name != "cmd0" || !cmd.Bang || len(cmd.Args) != 0 {
		t.Errorf("cmd = %+v", cmd)
	}
}

func TestParseBracketedArgs(t *testing.T) {
	r := newTestRegistry(t)
	cmd, perr := Parse("c  [aaa][bbb]ccc  ", r)
	if perr != nil {
		t.Fatalf("Parse() error = %v", perr)
	}
	want := []string{"aaa", "bbb", "ccc"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("Args = %v, want %v", cmd.Args, want)
	}
	for i, w := range want {
		if cmd.Args[i] != w {
			t.Errorf("Args[%d] = %q, want %q", i, cmd.Args[i], w)
		}
	}
}

func TestParseUnterminatedArgument(t *testing.T) {
	r := newTestRegistry(t)
	_, perr := Parse("c 0 1 'abc", r)
	if perr == nil {
		t.Fatal("expected an error")
	}
	if perr.Err != ErrUnterminatedArgument {
		t.Errorf("Err = %v, want ErrUnterminatedArgument", perr.Err)
	}
	if perr.Token.Text != "abc" {
		t.Errorf("Token.Text = %q, want abc", perr.Token.Text)
	}
}

func TestParseCommandNotFound(t *testing.T) {
	r := newTestRegistry(t)
	_, perr := Parse("nope", r)
	if perr == nil || perr.Err != ErrCommandNotFound {
		t.Fatalf("Parse() error = %v, want ErrCommandNotFound", perr)
	}
}

func TestParseBangRejectedWhenUnsupported(t *testing.T) {
	r := newTestRegistry(t)
	_, perr := Parse("c! 0 1 2", r)
	if perr == nil || perr.Err != ErrCommandDoesNotAcceptBang {
		t.Fatalf("Parse() error = %v, want ErrCommandDoesNotAcceptBang", perr)
	}
}

func TestParseTooFewArguments(t *testing.T) {
	r := newTestRegistry(t)
	_, perr := Parse("c 0 1", r)
	if perr == nil || perr.Err != ErrTooFewArguments {
		t.Fatalf("Parse() error = %v, want ErrTooFewArguments", perr)
	}
}

func TestParseTooManyArguments(t *testing.T) {
	r := newTestRegistry(t)
	_, perr := Parse("c 0 1 2 3", r)
	if perr == nil || perr.Err != ErrTooManyArguments {
		t.Fatalf("Parse() error = %v, want ErrTooManyArguments", perr)
	}
}

func TestSplitCommandsHandlesCommentsAndContinuation(t *testing.T) {
	text := "cmd0 a\\\ncontinued\n# a full line comment\n\ncmd1 b # trailing comment\n"
	got := SplitCommands(text)
	want := []string{"cmd0 acontinued", "cmd1 b"}
	if len(got) != len(want) {
		t.Fatalf("SplitCommands() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistoryPrevNext(t *testing.T) {
	h := NewHistory()
	h.Add("one")
	h.Add("two")
	h.Add("three")

	if got, ok := h.Prev(); !ok || got != "three" {
		t.Fatalf("Prev() = %q, %v, want three, true", got, ok)
	}
	if got, ok := h.Prev(); !ok || got != "two" {
		t.Fatalf("Prev() = %q, %v, want two, true", got, ok)
	}
	if got, ok := h.Next(); !ok || got != "three" {
		t.Fatalf("Next() = %q, %v, want three, true", got, ok)
	}
	if _, ok := h.Next(); ok {
		t.Fatal("Next() past newest should return ok=false")
	}
}

func TestHistoryRecyclesFrontSlotWhenFull(t *testing.T) {
	h := NewHistory()
	for i := 0; i < historyCapacity+2; i++ {
		h.Add(string(rune('a' + i)))
	}
	if h.Len() != historyCapacity {
		t.Fatalf("Len() = %d, want %d", h.Len(), historyCapacity)
	}
	oldest, ok := h.Prev()
	for i := 0; i < historyCapacity-1; i++ {
		oldest, ok = h.Prev()
	}
	if !ok || oldest != string(rune('a'+2)) {
		t.Errorf("oldest entry = %q, want %q", oldest, string(rune('a'+2)))
	}
}

func TestHistorySkipsEmpty(t *testing.T) {
	h := NewHistory()
	h.Add("")
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

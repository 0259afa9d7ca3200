package textdiff

import "testing"

func TestRenderEqual(t *testing.T) {
	if got := Render("a\nb\n", "a\nb\n", Options{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderChangedLine(t *testing.T) {
	a := "{\n  \"a\": 1,\n  \"b\": 2\n}\n"
	b := "{\n  \"a\": 10,\n  \"b\": 2\n}\n"
	want := "" +
		" {\n" +
		"-  \"a\": 1,\n" +
		"+  \"a\": 10,\n" +
		"   \"b\": 2\n" +
		" }\n"
	if got := Render(a, b, Options{}); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderInsertDelete(t *testing.T) {
	got := Render("a\nb\n", "a\nc\n", Options{})
	want := " a\n-b\n+c\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderNoTrailingNewline(t *testing.T) {
	got := Render("a", "b", Options{})
	want := "-a\n+b\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderColor(t *testing.T) {
	got := Render("a\n", "b\n", Options{Color: true})
	if got == "" {
		t.Fatal("expected a diff")
	}
	// painted output still carries the structural prefixes
	plain := Render("a\n", "b\n", Options{})
	if plain != "-a\n+b\n" {
		t.Errorf("plain = %q", plain)
	}
}

package frame

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
	}{
		{"", KindNull},
		{"   ", KindNull},
		{"42", KindInt},
		{"-7", KindInt},
		{"3.14", KindFloat},
		{"1e3", KindFloat},
		{"hello", KindString},
		{"12abc", KindString},
	}
	for _, c := range cases {
		if got := Parse(c.in).Kind(); got != c.kind {
			t.Errorf("Parse(%q).Kind() = %s, want %s", c.in, got, c.kind)
		}
	}
	if v, ok := Parse("42").Int(); !ok || v != 42 {
		t.Errorf("Parse(42).Int() = %d, %v", v, ok)
	}
	if v, ok := Parse("3.5").Float64(); !ok || v != 3.5 {
		t.Errorf("Parse(3.5).Float64() = %v, %v", v, ok)
	}
}

func TestValueFloat64PromotesInt(t *testing.T) {
	v, ok := Int(7).Float64()
	if !ok || v != 7.0 {
		t.Errorf("Int(7).Float64() = %v, %v", v, ok)
	}
	if _, ok := String("x").Float64(); ok {
		t.Error("String.Float64() should not be ok")
	}
	if _, ok := Null().Float64(); ok {
		t.Error("Null.Float64() should not be ok")
	}
}

func TestAddColumn(t *testing.T) {
	f := New()
	if err := f.AddColumn("a", []Value{Int(1), Int(2)}); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if err := f.AddColumn("a", []Value{Int(3), Int(4)}); err == nil {
		t.Fatal("expected duplicate column error")
	}
	if err := f.AddColumn("b", []Value{Int(3)}); err == nil {
		t.Fatal("expected row count error")
	}
	if err := f.AddColumn("b", []Value{Int(3), Int(4)}); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if f.NumRows() != 2 || f.NumCols() != 2 {
		t.Errorf("got %dx%d, want 2x2", f.NumRows(), f.NumCols())
	}
}

func TestRenameKeepsOrder(t *testing.T) {
	f := New()
	f.AddColumn("First", []Value{Int(1)})
	f.AddColumn("Second", []Value{Int(2)})
	f.Rename(map[string]string{"Second": "second"})

	names := f.Names()
	if names[0] != "First" || names[1] != "second" {
		t.Errorf("unexpected names after rename: %v", names)
	}
	if !f.HasColumn("second") || f.HasColumn("Second") {
		t.Error("index not updated after rename")
	}
	if c, ok := f.Column("second"); !ok || len(c.Values) != 1 {
		t.Error("renamed column not reachable")
	}
}

func TestNullCount(t *testing.T) {
	f := New()
	f.AddColumn("a", []Value{Int(1), Null(), Int(3)})
	f.AddColumn("b", []Value{Null(), String("x"), Float(2.5)})
	if got := f.NullCount(); got != 2 {
		t.Errorf("NullCount = %d, want 2", got)
	}
}

func TestTypedAccessors(t *testing.T) {
	f := New()
	f.AddColumn("n", []Value{Int(1), Int(2)})
	f.AddColumn("s", []Value{String("a"), String("b")})
	f.AddColumn("mixed", []Value{Int(1), String("x")})

	ints, err := f.Ints("n")
	if err != nil || len(ints) != 2 || ints[1] != 2 {
		t.Errorf("Ints = %v, %v", ints, err)
	}
	floats, err := f.Floats("n")
	if err != nil || floats[0] != 1.0 {
		t.Errorf("Floats = %v, %v", floats, err)
	}
	strs, err := f.Strings("s")
	if err != nil || strs[0] != "a" {
		t.Errorf("Strings = %v, %v", strs, err)
	}
	if _, err := f.Ints("mixed"); err == nil {
		t.Error("Ints on mixed column should fail")
	}
	if _, err := f.Ints("missing"); err == nil {
		t.Error("Ints on missing column should fail")
	}
}

func TestRow(t *testing.T) {
	f := New()
	f.AddColumn("a", []Value{Int(1), Int(2)})
	f.AddColumn("b", []Value{String("x"), String("y")})
	row := f.Row(1)
	if v, _ := row[0].Int(); v != 2 {
		t.Errorf("row[0] = %v", row[0].Interface())
	}
	if v, _ := row[1].Str(); v != "y" {
		t.Errorf("row[1] = %v", row[1].Interface())
	}
}

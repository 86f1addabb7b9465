package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ifSingleLineCondition(t *testing.T) {
	node := NewIf("x % 2 == 0", NewReturn("x"), nil)

	assert.Equal(t, "if x % 2 == 0:\n    return x", Render(node))
}

func Test_ifMultiLineCondition(t *testing.T) {
	node := NewIf("x > 0\nand y > 0", NewReturn("x"), nil)

	want := "if (\n" +
		"        x > 0\n" +
		"        and y > 0\n" +
		"  ):\n" +
		"    return x"
	assert.Equal(t, want, Render(node))
}

func Test_ifWithElse(t *testing.T) {
	node := NewIf("x % 2 == 0",
		NewSuite(NewAssign("y", "x+2"), NewReturn("y")),
		NewReturn("2*x"))

	want := "if x % 2 == 0:\n" +
		"    y = x+2\n" +
		"    return y\n" +
		"else:\n" +
		"    return 2*x"
	assert.Equal(t, want, Render(node))
}

// A body that is already block-shaped is rendered as-is; NewIf must not
// wrap it a second time.
func Test_ifBlockBodyNotRewrapped(t *testing.T) {
	node := NewIf("ready", NewSuite(NewStatement("go()")), nil)

	assert.Equal(t, "if ready:\n    go()", Render(node))
}

func Test_ifNilBodyPanics(t *testing.T) {
	assert.Panics(t, func() { NewIf("x", nil, nil) })
}

func Test_loops(t *testing.T) {
	tests := []struct {
		name string
		got  Node
		want string
	}{
		{
			name: "Test while loop",
			got:  NewWhile("n > 0", NewSuite(NewAssign("n", "n - 1"))),
			want: "while (n > 0):\n    n = n - 1",
		},
		{
			name: "Test for loop single variable",
			got:  NewFor([]string{"i"}, "range(10)", NewStatement("print(i)")),
			want: "for i in range(10):\n    print(i)",
		},
		{
			name: "Test for loop unpacking",
			got:  NewFor([]string{"k", "v"}, "items.items()", NewStatement("print(k, v)")),
			want: "for k, v in items.items():\n    print(k, v)",
		},
		{
			name: "Test custom loop with header and footer",
			got:  NewCustomLoop("do {", NewSuite(NewStatement("step()")), "} while (more);"),
			want: "do {\n    step()\n} while (more);",
		},
		{
			name: "Test custom loop without footer",
			got:  NewCustomLoop("repeat:", NewSuite(NewStatement("step()")), ""),
			want: "repeat:\n    step()",
		},
		{
			name: "Test custom loop without header",
			got:  NewCustomLoop("", NewSuite(NewStatement("step()")), "until done"),
			want: "    step()\nuntil done",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.got))
		})
	}
}

func Test_forContractViolations(t *testing.T) {
	assert.Panics(t, func() { NewFor(nil, "range(10)", NewStatement("print(i)")) })
	assert.Panics(t, func() { NewFor([]string{"i"}, "range(10)", nil) })
	assert.Panics(t, func() { NewWhile("n > 0", nil) })
	assert.Panics(t, func() { NewCustomLoop("loop:", nil, "") })
}

func Test_ifChain(t *testing.T) {
	pairs := []ConditionBlock{
		{Condition: "a", Block: NewStatement("A")},
		{Condition: "b", Block: NewStatement("B")},
		{Condition: "c", Block: NewStatement("C")},
	}

	t.Run("Test chain without fallback", func(t *testing.T) {
		want := "if a:\n" +
			"    A\n" +
			"else:\n" +
			"    if b:\n" +
			"        B\n" +
			"    else:\n" +
			"        if c:\n" +
			"            C"
		assert.Equal(t, want, Render(NewIfChain(pairs, nil)))
	})

	t.Run("Test chain with last pair as fallback", func(t *testing.T) {
		want := "if a:\n" +
			"    A\n" +
			"else:\n" +
			"    if b:\n" +
			"        B\n" +
			"    else:\n" +
			"        C"
		assert.Equal(t, want, Render(NewIfChain(pairs, LastIsFallback)))
	})

	t.Run("Test chain with explicit fallback", func(t *testing.T) {
		want := "if a:\n" +
			"    A\n" +
			"else:\n" +
			"    D"
		got := NewIfChain(pairs[:1], NewStatement("D"))
		assert.Equal(t, want, Render(got))
	})

	t.Run("Test empty chain yields no node", func(t *testing.T) {
		assert.Nil(t, NewIfChain(nil, nil))
	})

	t.Run("Test empty chain with sentinel panics", func(t *testing.T) {
		assert.Panics(t, func() { NewIfChain(nil, LastIsFallback) })
	})
}

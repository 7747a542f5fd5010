package rules

import (
	"testing"

	m "github.com/redress-dev/redress/internal/model"
)

func TestDualImpl(t *testing.T) {
	rule := NewDualImpl()

	t.Run("inherent plus custom trait is flagged", func(t *testing.T) {
		file := sourceOf("src/Widget.rs",
			"impl Widget {",
			"    fn area(&self) -> f64 { 0.0 }",
			"}",
			"",
			"impl Drawable for Widget {",
			"    fn draw(&self) {}",
			"}",
		)

		violations := rule.Check(file, m.FileScan{})
		if len(violations) != 1 {
			t.Fatalf("expected 1 violation, got %d", len(violations))
		}

		want := "type Widget has both inherent and trait implementations (Drawable)"
		if violations[0].Line != 1 || violations[0].Message != want {
			t.Fatalf("unexpected violation %v", violations[0])
		}
	})

	t.Run("standard traits do not count", func(t *testing.T) {
		file := sourceOf("src/Widget.rs",
			"impl Widget {",
			"    fn area(&self) -> f64 { 0.0 }",
			"}",
			"",
			"impl Display for Widget {",
			"}",
			"",
			"impl Clone for Widget {",
			"}",
		)

		if violations := rule.Check(file, m.FileScan{}); len(violations) != 0 {
			t.Fatalf("expected no violations, got %v", violations)
		}
	})

	t.Run("trait impl only passes", func(t *testing.T) {
		file := sourceOf("src/Widget.rs",
			"impl Drawable for Widget {",
			"    fn draw(&self) {}",
			"}",
		)

		if violations := rule.Check(file, m.FileScan{}); len(violations) != 0 {
			t.Fatalf("expected no violations, got %v", violations)
		}
	})

	t.Run("generic headers are recognized", func(t *testing.T) {
		file := sourceOf("src/Stack.rs",
			"impl<T> Stack<T> {",
			"    fn push(&mut self, value: T) {}",
			"}",
			"",
			"impl<T> Container<T> for Stack<T> {",
			"}",
		)

		violations := rule.Check(file, m.FileScan{})
		if len(violations) != 1 {
			t.Fatalf("expected 1 violation, got %d", len(violations))
		}

		want := "type Stack has both inherent and trait implementations (Container)"
		if violations[0].Message != want {
			t.Fatalf("expected message %q, got %q", want, violations[0].Message)
		}
	})

	t.Run("trait names are listed sorted", func(t *testing.T) {
		file := sourceOf("src/Widget.rs",
			"impl Widget {",
			"}",
			"impl Zeta for Widget {",
			"}",
			"impl Alpha for Widget {",
			"}",
		)

		violations := rule.Check(file, m.FileScan{})
		if len(violations) != 1 {
			t.Fatalf("expected 1 violation, got %d", len(violations))
		}

		want := "type Widget has both inherent and trait implementations (Alpha, Zeta)"
		if violations[0].Message != want {
			t.Fatalf("expected message %q, got %q", want, violations[0].Message)
		}
	})
}

func TestImplMethodLength(t *testing.T) {
	file := sourceOf("src/Widget.rs",
		"impl Widget {",
		"    fn long(&self) {",
		"        first();",
		"        second();",
		"        third();",
		"    }",
		"}",
	)

	scan := m.FileScan{
		Spans: []m.ScopeSpan{
			{Kind: m.ScopeImpl, Name: "Widget", StartLine: 1, EndLine: 7, Depth: 1},
		},
		Depths: []int{0, 1, 2, 2, 2, 2, 1},
	}

	t.Run("method over budget is flagged", func(t *testing.T) {
		rule := NewImplMethodLength(3)

		violations := rule.Check(file, scan)
		if len(violations) != 1 {
			t.Fatalf("expected 1 violation, got %d", len(violations))
		}

		want := "method long is 5 lines long (budget 3)"
		if violations[0].Line != 2 || violations[0].Message != want {
			t.Fatalf("unexpected violation %v", violations[0])
		}
	})

	t.Run("method within budget passes", func(t *testing.T) {
		rule := NewImplMethodLength(5)

		if violations := rule.Check(file, scan); len(violations) != 0 {
			t.Fatalf("expected no violations, got %v", violations)
		}
	})

	t.Run("signature-only declarations are not measured", func(t *testing.T) {
		file := sourceOf("src/Shape.rs",
			"trait Shape {",
			"    fn area(&self) -> f64;",
			"}",
		)

		scan := m.FileScan{
			Spans: []m.ScopeSpan{
				{Kind: m.ScopeImpl, Name: "Shape", StartLine: 1, EndLine: 3, Depth: 1},
			},
			Depths: []int{0, 1, 1},
		}

		rule := NewImplMethodLength(1)

		if violations := rule.Check(file, scan); len(violations) != 0 {
			t.Fatalf("expected no violations, got %v", violations)
		}
	})

	t.Run("zero budget disables the rule", func(t *testing.T) {
		rule := NewImplMethodLength(0)

		if violations := rule.Check(file, scan); len(violations) != 0 {
			t.Fatalf("expected no violations, got %v", violations)
		}
	})
}

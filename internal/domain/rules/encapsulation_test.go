package rules

import (
	"testing"

	m "github.com/redress-dev/redress/internal/model"
)

func TestModuleEncapsulation(t *testing.T) {
	rule := NewModuleEncapsulation(m.DefaultProfile())

	t.Run("items inside a module pass", func(t *testing.T) {
		file := sourceOf("src/Geometry.rs",
			"mod geometry {",
			"    pub fn area() {}",
			"}",
		)

		scan := m.FileScan{
			Spans: []m.ScopeSpan{
				{Kind: m.ScopeBlock, Name: "geometry", StartLine: 1, EndLine: 3, Depth: 1},
			},
			Depths: []int{0, 1, 1},
		}

		if violations := rule.Check(file, scan); len(violations) != 0 {
			t.Fatalf("expected no violations, got %v", violations)
		}
	})

	t.Run("top-level item is flagged", func(t *testing.T) {
		file := sourceOf("src/Geometry.rs",
			"fn helper() {}",
			"",
			"mod geometry {",
			"}",
		)

		scan := m.FileScan{
			Spans: []m.ScopeSpan{
				{Kind: m.ScopeTopLevel, StartLine: 1, EndLine: 2, Depth: 0},
				{Kind: m.ScopeBlock, Name: "geometry", StartLine: 3, EndLine: 4, Depth: 1},
			},
			Depths: []int{0, 0, 0, 1},
		}

		violations := rule.Check(file, scan)
		if len(violations) != 1 {
			t.Fatalf("expected 1 violation, got %d", len(violations))
		}

		if violations[0].Line != 1 || violations[0].Message != "fn declared outside a module block" {
			t.Fatalf("unexpected violation %v", violations[0])
		}
	})

	t.Run("top-level impl is flagged once", func(t *testing.T) {
		file := sourceOf("src/Widget.rs",
			"impl Widget {",
			"    fn draw(&self) {}",
			"}",
		)

		scan := m.FileScan{
			Spans: []m.ScopeSpan{
				{Kind: m.ScopeImpl, Name: "Widget", StartLine: 1, EndLine: 3, Depth: 1},
			},
			Depths: []int{0, 1, 1},
		}

		violations := rule.Check(file, scan)
		if len(violations) != 1 {
			t.Fatalf("expected 1 violation, got %d", len(violations))
		}

		if violations[0].Line != 1 || violations[0].Message != "impl block outside a module block" {
			t.Fatalf("unexpected violation %v", violations[0])
		}
	})

	t.Run("impl inside a module passes", func(t *testing.T) {
		file := sourceOf("src/Widget.rs",
			"mod shapes {",
			"    impl Widget {",
			"        fn draw(&self) {}",
			"    }",
			"}",
		)

		scan := m.FileScan{
			Spans: []m.ScopeSpan{
				{Kind: m.ScopeBlock, Name: "shapes", StartLine: 1, EndLine: 1, Depth: 1},
				{Kind: m.ScopeImpl, Name: "Widget", StartLine: 2, EndLine: 4, Depth: 2},
				{Kind: m.ScopeBlock, Name: "shapes", StartLine: 5, EndLine: 5, Depth: 1},
			},
			Depths: []int{0, 1, 2, 2, 1},
		}

		if violations := rule.Check(file, scan); len(violations) != 0 {
			t.Fatalf("expected no violations, got %v", violations)
		}
	})

	t.Run("entry files are exempt", func(t *testing.T) {
		file := sourceOf("src/main.rs", "fn main() {}")

		if violations := rule.Check(file, topLevelScan(1)); len(violations) != 0 {
			t.Fatalf("expected no violations, got %v", violations)
		}
	})

	t.Run("uses attributes and mod declarations pass", func(t *testing.T) {
		file := sourceOf("src/Api.rs",
			"#![allow(dead_code)]",
			"use std::fmt;",
			"mod helpers;",
			"const MAX: u32 = 10;",
		)

		violations := rule.Check(file, topLevelScan(4))
		if len(violations) != 1 {
			t.Fatalf("expected 1 violation, got %d", len(violations))
		}

		if violations[0].Line != 4 || violations[0].Message != "const declared outside a module block" {
			t.Fatalf("unexpected violation %v", violations[0])
		}
	})
}

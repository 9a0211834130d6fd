package treeprinter

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleTree() *MultiNode {
	return &MultiNode{Data: 1, Children: []*MultiNode{
		{Data: 0},
		{Data: 2, Children: []*MultiNode{{Data: 3}}},
		{Data: 4},
	}}
}

func TestPrintMultiTree(t *testing.T) {
	tests := []struct {
		name  string
		style int
		want  string
	}{
		{
			name:  "ascii",
			style: StyleASCII,
			want: "'-- 1\n" +
				"    .-- 0\n" +
				"    .-- 2\n" +
				"    |   '-- 3\n" +
				"    '-- 4\n",
		},
		{
			name:  "unicode",
			style: StyleUnicode,
			want: "└── 1\n" +
				"    ├── 0\n" +
				"    ├── 2\n" +
				"    │   └── 3\n" +
				"    └── 4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrintMultiTree(MultiTreePrinter{Root: sampleTree(), Style: tt.style})
			t.Log("\n" + got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintMultiTreeEmpty(t *testing.T) {
	if got := PrintMultiTree(MultiTreePrinter{}); got != "tree is empty\n" {
		t.Errorf("unexpected output for empty tree: %q", got)
	}
}

func TestPrintForest(t *testing.T) {
	roots := []*MultiNode{
		{Data: 0, Children: []*MultiNode{{Data: 1}}},
		{Data: 5},
	}
	got := PrintForest(roots, StyleASCII, func(n *MultiNode) string {
		return fmt.Sprintf("e%v", n.Data)
	})
	want := "'-- e0\n" +
		"    '-- e1\n" +
		"'-- e5\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Mismatch (-want +got):\n%s", diff)
	}

	if got := PrintForest(nil, StyleASCII, nil); got != "forest is empty\n" {
		t.Errorf("unexpected output for empty forest: %q", got)
	}
}

func TestPrintMultiTreeDeepChain(t *testing.T) {
	// 长链不能爆栈
	root := &MultiNode{Data: 0}
	cur := root
	for i := 1; i < 2000; i++ {
		next := &MultiNode{Data: i}
		cur.Children = []*MultiNode{next}
		cur = next
	}
	out := PrintMultiTree(MultiTreePrinter{Root: root})
	if len(out) == 0 {
		t.Fatal("expected output for deep chain")
	}
}

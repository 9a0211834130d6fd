package forestview

import (
	"fmt"
	"strconv"

	"unionfind_tool/pkg/diffutil"
	"unionfind_tool/pkg/errorutil"
	"unionfind_tool/pkg/treeprinter"
	"unionfind_tool/pkg/unionfind"

	"github.com/awalterschulze/gographviz"
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/constraints"
)

// Options 控制各种视图的输出
type Options struct {
	Style         int                 // treeprinter.StyleASCII 或 treeprinter.StyleUnicode
	Label         func(id int) string // 元素的显示名，为空时直接显示编号
	MaxLabelWidth int                 // 标签最大显示宽度，0 表示不截断
	ShowSize      bool                // 根节点后面附带集合大小
	GraphName     string              // DOT 图名
}

func DefaultOptions() Options {
	return Options{
		Style:     treeprinter.StyleUnicode,
		ShowSize:  true,
		GraphName: "forest",
	}
}

func (o Options) label(id int) string {
	s := strconv.Itoa(id)
	if o.Label != nil {
		s = o.Label(id)
	}
	if o.MaxLabelWidth > 0 {
		s = runewidth.Truncate(s, o.MaxLabelWidth, "…")
	}
	return s
}

// children 建立 父节点 -> 孩子列表 的有序索引，孩子按编号升序
func children[T constraints.Integer](s unionfind.Snapshot[T]) *rbt.Tree {
	index := rbt.NewWith(utils.IntComparator)
	for i, p := range s.Parent {
		if int(p) == i {
			continue
		}
		var kids []int
		if v, found := index.Get(int(p)); found {
			kids = v.([]int)
		}
		index.Put(int(p), append(kids, i))
	}
	return index
}

// forest 把快照转换成 treeprinter 的多叉树，根节点按编号升序
func forest[T constraints.Integer](s unionfind.Snapshot[T]) []*treeprinter.MultiNode {
	nodes := make([]*treeprinter.MultiNode, s.Len())
	for i := range nodes {
		nodes[i] = &treeprinter.MultiNode{Data: i}
	}

	it := children(s).Iterator()
	for it.Next() {
		parent := nodes[it.Key().(int)]
		for _, c := range it.Value().([]int) {
			parent.Children = append(parent.Children, nodes[c])
		}
	}

	var roots []*treeprinter.MultiNode
	for i := range nodes {
		if s.IsRoot(T(i)) {
			roots = append(roots, nodes[i])
		}
	}
	return roots
}

// Tree 把每个集合画成一棵树，孩子指向父亲的关系就是树边
func Tree[T constraints.Integer](s unionfind.Snapshot[T], opts Options) string {
	return treeprinter.PrintForest(forest(s), opts.Style, func(n *treeprinter.MultiNode) string {
		id := n.Data.(int)
		if opts.ShowSize && s.IsRoot(T(id)) {
			return fmt.Sprintf("%s (size %d)", opts.label(id), s.Size[id])
		}
		return opts.label(id)
	})
}

func nodeID(i int) string {
	return "n" + strconv.Itoa(i)
}

// DOT 导出为 graphviz 有向图，边从孩子指向父亲，根节点画成双圈
func DOT[T constraints.Integer](s unionfind.Snapshot[T], opts Options) (string, error) {
	name := opts.GraphName
	if name == "" {
		name = "forest"
	}

	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return "", errorutil.Wrap(errorutil.CodeRenderFailed, err, "forestview: graph name %q", name)
	}
	if err := g.SetDir(true); err != nil {
		return "", errorutil.Wrap(errorutil.CodeRenderFailed, err, "forestview: set directed")
	}

	for i := range s.Parent {
		attrs := map[string]string{"label": strconv.Quote(opts.label(i))}
		if s.IsRoot(T(i)) {
			attrs["shape"] = "doublecircle"
		}
		if err := g.AddNode(name, nodeID(i), attrs); err != nil {
			return "", errorutil.Wrap(errorutil.CodeRenderFailed, err, "forestview: add node %d", i)
		}
	}
	for i, p := range s.Parent {
		if int(p) == i {
			continue
		}
		if err := g.AddEdge(nodeID(i), nodeID(int(p)), true, nil); err != nil {
			return "", errorutil.Wrap(errorutil.CodeRenderFailed, err, "forestview: add edge %d->%d", i, p)
		}
	}
	return g.String(), nil
}

// Diff 对比两个快照的树形渲染，常用来观察一次 Union 或 Find 带来的结构变化
func Diff[T constraints.Integer](before, after unionfind.Snapshot[T], opts Options) string {
	lines := diffutil.CompareForests(Tree(before, opts), Tree(after, opts))
	return diffutil.FormatSideBySide(lines)
}

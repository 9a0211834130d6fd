package graph

import (
	"sort"

	"unionfind_tool/pkg/errorutil"
	"unionfind_tool/pkg/logutil"
	"unionfind_tool/pkg/unionfind"

	"github.com/awalterschulze/gographviz"
)

// Parse 解析 DOT 文本，有向图和无向图都可以
func Parse(src []byte) (*gographviz.Graph, error) {
	g, err := gographviz.Read(src)
	if err != nil {
		return nil, errorutil.Wrap(errorutil.CodeInvalidGraph, err, "graph: parse dot")
	}
	logutil.Debug("graph: parsed %q with %d nodes and %d edges", g.Name, len(g.Nodes.Nodes), len(g.Edges.Edges))
	return g, nil
}

// indexed 把节点名映射成 [0, n) 的编号，编号顺序就是节点声明顺序
type indexed struct {
	names []string
	index map[string]int
	uf    *unionfind.UnionFind[int]
}

func newIndexed(g *gographviz.Graph) *indexed {
	ix := &indexed{index: make(map[string]int, len(g.Nodes.Nodes))}
	for _, node := range g.Nodes.Nodes {
		if _, ok := ix.index[node.Name]; ok {
			continue
		}
		ix.index[node.Name] = len(ix.names)
		ix.names = append(ix.names, node.Name)
	}
	ix.uf = unionfind.New[int](len(ix.names))
	return ix
}

// union 合并一条边的两个端点，返回是否连接了两个原本不连通的部分
func (ix *indexed) union(e *gographviz.Edge) (bool, error) {
	src, ok := ix.index[e.Src]
	if !ok {
		return false, errorutil.New(errorutil.CodeInvalidGraph, "graph: edge source %q is not a declared node", e.Src)
	}
	dst, ok := ix.index[e.Dst]
	if !ok {
		return false, errorutil.New(errorutil.CodeInvalidGraph, "graph: edge target %q is not a declared node", e.Dst)
	}
	return ix.uf.TryUnion(src, dst)
}

// ConnectedComponents 忽略边的方向，返回所有连通分量
// 每个分量内的节点名按字典序排序，分量之间按第一个节点名排序
func ConnectedComponents(g *gographviz.Graph) ([][]string, error) {
	ix := newIndexed(g)
	for _, e := range g.Edges.Edges {
		if _, err := ix.union(e); err != nil {
			return nil, err
		}
	}

	sets := ix.uf.Sets()
	out := make([][]string, 0, len(sets))
	for _, set := range sets {
		group := make([]string, 0, len(set))
		for _, id := range set {
			group = append(group, ix.names[id])
		}
		sort.Strings(group)
		out = append(out, group)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i][0] < out[j][0]
	})
	return out, nil
}

// FindUndirectedCycle 按边的声明顺序合并端点，
// 第一条两端已经连通的边就闭合了一个（无向）环，自环也算
func FindUndirectedCycle(g *gographviz.Graph) (bool, [2]string, error) {
	ix := newIndexed(g)
	for _, e := range g.Edges.Edges {
		merged, err := ix.union(e)
		if err != nil {
			return false, [2]string{}, err
		}
		if !merged {
			return true, [2]string{e.Src, e.Dst}, nil
		}
	}
	return false, [2]string{}, nil
}

// SpanningForest 按声明顺序保留能连接两个不同分量的边（无权重的 Kruskal）
func SpanningForest(g *gographviz.Graph) ([][2]string, error) {
	ix := newIndexed(g)
	var kept [][2]string
	for _, e := range g.Edges.Edges {
		merged, err := ix.union(e)
		if err != nil {
			return nil, err
		}
		if merged {
			kept = append(kept, [2]string{e.Src, e.Dst})
		}
	}
	return kept, nil
}

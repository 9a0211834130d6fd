package unionfind

import (
	"unionfind_tool/pkg/errorutil"

	"github.com/mohae/deepcopy"
	"golang.org/x/exp/constraints"
)

// Snapshot 是并查集内部状态的深拷贝，修改它不会影响原结构
type Snapshot[T constraints.Integer] struct {
	Parent     []T
	Size       []int // 只在根节点有效
	Components int
}

// Snapshot 拷贝当前状态，不做路径压缩，因此拿到的是真实的树形
func (uf *UnionFind[T]) Snapshot() Snapshot[T] {
	return deepcopy.Copy(Snapshot[T]{
		Parent:     uf.parent,
		Size:       uf.size,
		Components: uf.components,
	}).(Snapshot[T])
}

// Clone 返回一个形状完全相同、互不影响的新并查集
func (uf *UnionFind[T]) Clone() *UnionFind[T] {
	s := uf.Snapshot()
	return &UnionFind[T]{parent: s.Parent, size: s.Size, components: s.Components}
}

// Len 返回元素个数
func (s Snapshot[T]) Len() int {
	return len(s.Parent)
}

// IsRoot 判断 p 是否是根节点
func (s Snapshot[T]) IsRoot(p T) bool {
	return s.Parent[int(p)] == p
}

// Root 沿父指针找到根节点，不修改快照
func (s Snapshot[T]) Root(p T) T {
	for p != s.Parent[int(p)] {
		p = s.Parent[int(p)]
	}
	return p
}

// Depth 返回 p 到根节点的边数
func (s Snapshot[T]) Depth(p T) int {
	d := 0
	for p != s.Parent[int(p)] {
		p = s.Parent[int(p)]
		d++
	}
	return d
}

// Sets 和 UnionFind.Sets 顺序一致，但只读快照
func (s Snapshot[T]) Sets() [][]T {
	index := make(map[T]int, s.Components)
	out := make([][]T, 0, s.Components)
	for i := range s.Parent {
		r := s.Root(T(i))
		k, ok := index[r]
		if !ok {
			k = len(out)
			index[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], T(i))
	}
	return out
}

// Validate 检查快照是否是一个合法的并查集状态：
// 长度一致、父指针都在范围内、没有环、根节点的大小和集合数都对得上
func (s Snapshot[T]) Validate() error {
	n := len(s.Parent)
	if len(s.Size) != n {
		return errorutil.New(errorutil.CodeInvalidCount,
			"unionfind: snapshot has %d parents but %d sizes", n, len(s.Size))
	}
	if !fits[T](n) {
		return errorutil.New(errorutil.CodeInvalidCount,
			"unionfind: element count %d overflows element type", n)
	}
	for i, p := range s.Parent {
		if p < 0 || uint64(p) >= uint64(n) {
			return errorutil.New(errorutil.CodeIndexOutOfRange,
				"unionfind: parent of %d is %d, out of range [0, %d)", i, p, n)
		}
	}

	// 三色标记找环：0 未访问，1 正在当前路径上，2 已确认能走到根
	const (
		unvisited = 0
		onPath    = 1
		done      = 2
	)
	state := make([]uint8, n)
	path := make([]int, 0)
	for i := range s.Parent {
		path = path[:0]
		cur := i
		for state[cur] == unvisited {
			state[cur] = onPath
			path = append(path, cur)
			next := int(s.Parent[cur])
			if next == cur {
				break
			}
			cur = next
		}
		if state[cur] == onPath && int(s.Parent[cur]) != cur {
			return errorutil.New(errorutil.CodeInvalidForest,
				"unionfind: parent pointers form a cycle through %d", cur)
		}
		for _, p := range path {
			state[p] = done
		}
	}

	counts := make([]int, n)
	for i := range s.Parent {
		counts[int(s.Root(T(i)))]++
	}
	roots := 0
	for i := range s.Parent {
		if int(s.Parent[i]) != i {
			continue
		}
		roots++
		if s.Size[i] != counts[i] {
			return errorutil.New(errorutil.CodeInvalidForest,
				"unionfind: root %d records size %d but has %d members", i, s.Size[i], counts[i])
		}
	}
	if roots != s.Components {
		return errorutil.New(errorutil.CodeInvalidForest,
			"unionfind: snapshot records %d components but has %d roots", s.Components, roots)
	}
	return nil
}

// FromSnapshot 校验快照并重建并查集，快照本身会被拷贝
func FromSnapshot[T constraints.Integer](s Snapshot[T]) (*UnionFind[T], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	c := deepcopy.Copy(s).(Snapshot[T])
	return &UnionFind[T]{parent: c.Parent, size: c.Size, components: c.Components}, nil
}

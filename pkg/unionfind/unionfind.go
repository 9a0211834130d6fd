package unionfind

import (
	"slices"

	"unionfind_tool/pkg/errorutil"
	"unionfind_tool/pkg/logutil"

	"golang.org/x/exp/constraints"
)

// UnionFind 是并查集结构，支持路径压缩和按大小合并
// 元素是 [0, n) 范围内的整数，T 可以是任意整数类型（比如 uint32 节省内存）
// 不是并发安全的：Find 会做路径压缩，同样会修改内部状态，
// 并发使用时每一次调用（包括 Find 和 Connected）都需要外部加互斥锁
type UnionFind[T constraints.Integer] struct {
	parent     []T   // parent[i] == i 表示 i 是根节点（代表元）
	size       []int // 集合大小，只在根节点上有效
	components int   // 不相交集合的个数
}

// fits 判断 [0, n) 的所有下标都能用 T 表示
func fits[T constraints.Integer](n int) bool {
	return n <= 0 || int(T(n-1)) == n-1
}

// New 初始化并查集，元素范围为 [0, n)，每个元素自成一个集合
// n 为负数或者超出 T 的表示范围时 panic
func New[T constraints.Integer](n int) *UnionFind[T] {
	if n < 0 {
		panic(errorutil.New(errorutil.CodeInvalidCount, "unionfind: negative element count %d", n))
	}
	if !fits[T](n) {
		panic(errorutil.New(errorutil.CodeInvalidCount, "unionfind: element count %d overflows element type", n))
	}

	parent := make([]T, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = T(i)
		size[i] = 1
	}
	return &UnionFind[T]{parent: parent, size: size, components: n}
}

// checkIndex 在任何修改发生之前检查下标
func (uf *UnionFind[T]) checkIndex(p T) error {
	if p < 0 || uint64(p) >= uint64(len(uf.parent)) {
		return errorutil.New(errorutil.CodeIndexOutOfRange,
			"unionfind: index %d out of range [0, %d)", p, len(uf.parent))
	}
	return nil
}

func (uf *UnionFind[T]) mustCheck(p T) {
	if err := uf.checkIndex(p); err != nil {
		panic(err)
	}
}

// find 先找到根节点，再把路径上所有节点直接挂到根上（调用方保证下标合法）
func (uf *UnionFind[T]) find(p T) T {
	r := p
	for r != uf.parent[int(r)] {
		r = uf.parent[int(r)]
	}
	for p != r {
		next := uf.parent[int(p)]
		uf.parent[int(p)] = r
		p = next
	}
	return r
}

// union 按大小合并，大小相同时 q 的根挂到 p 的根下面；返回是否真的发生了合并
func (uf *UnionFind[T]) union(p, q T) bool {
	i := uf.find(p)
	j := uf.find(q)
	if i == j {
		return false
	}

	if uf.size[int(i)] < uf.size[int(j)] {
		uf.parent[int(i)] = j
		uf.size[int(j)] += uf.size[int(i)]
	} else {
		uf.parent[int(j)] = i
		uf.size[int(i)] += uf.size[int(j)]
	}
	uf.components--
	return true
}

// Find 查找元素所在集合的根节点（带路径压缩）
// 下标越界时 panic，panic 的值是 *errorutil.CodedError
func (uf *UnionFind[T]) Find(p T) T {
	uf.mustCheck(p)
	return uf.find(p)
}

// Union 合并 p 和 q 所在的集合，已经在同一个集合时什么都不做
// 两个下标都先检查，越界时不会压缩任何一条路径
func (uf *UnionFind[T]) Union(p, q T) {
	uf.mustCheck(p)
	uf.mustCheck(q)
	uf.union(p, q)
}

// Connected 判断两个元素是否在同一个集合
func (uf *UnionFind[T]) Connected(p, q T) bool {
	uf.mustCheck(p)
	uf.mustCheck(q)
	return uf.find(p) == uf.find(q)
}

// Components 返回当前不相交集合的个数
func (uf *UnionFind[T]) Components() int {
	return uf.components
}

// Size 返回元素总数 n
func (uf *UnionFind[T]) Size() int {
	return len(uf.parent)
}

// Extend 追加 k 个单元素集合，返回第一个新元素的编号
// k == 0 时什么都不做，返回 Size()
func (uf *UnionFind[T]) Extend(k int) T {
	if k < 0 {
		panic(errorutil.New(errorutil.CodeInvalidCount, "unionfind: cannot extend by %d elements", k))
	}
	first := len(uf.parent)
	if !fits[T](first + k) {
		panic(errorutil.New(errorutil.CodeInvalidCount,
			"unionfind: element count %d overflows element type", first+k))
	}
	if k == 0 {
		return T(first)
	}

	uf.parent = slices.Grow(uf.parent, k)
	uf.size = slices.Grow(uf.size, k)
	for i := first; i < first+k; i++ {
		uf.parent = append(uf.parent, T(i))
		uf.size = append(uf.size, 1)
	}
	uf.components += k

	logutil.Debug("unionfind: extended by %d, size=%d components=%d", k, len(uf.parent), uf.components)
	return T(first)
}

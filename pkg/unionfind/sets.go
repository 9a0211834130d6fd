package unionfind

import (
	"fmt"
	"sort"
)

// SizeOf 返回 p 所在集合的元素个数
func (uf *UnionFind[T]) SizeOf(p T) int {
	return uf.size[int(uf.Find(p))]
}

// Sets 返回所有集合，集合内元素升序，集合之间按最小元素升序
func (uf *UnionFind[T]) Sets() [][]T {
	index := make(map[T]int, uf.components)
	out := make([][]T, 0, uf.components)
	for i := range uf.parent {
		r := uf.find(T(i))
		k, ok := index[r]
		if !ok {
			k = len(out)
			index[r] = k
			out = append(out, make([]T, 0, uf.size[int(r)]))
		}
		out[k] = append(out[k], T(i))
	}
	return out
}

// SortedSets 按集合大小降序返回，大小相同时最小元素小的在前
func (uf *UnionFind[T]) SortedSets() [][]T {
	out := uf.Sets()
	// Sets 已经按最小元素排好，稳定排序保留这个顺序
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// String 格式化成 UnionFind([[0 1 2] [3]]) 的形式
func (uf *UnionFind[T]) String() string {
	return fmt.Sprintf("UnionFind(%v)", uf.SortedSets())
}

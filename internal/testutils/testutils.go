package testutils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Connectivity 是断言需要的最小接口，*unionfind.UnionFind 满足它
type Connectivity[T constraints.Integer] interface {
	Connected(p, q T) bool
}

// CheckConnected 断言 comp 中的元素两两连通
func CheckConnected[T constraints.Integer](t testing.TB, uf Connectivity[T], comp []T) bool {
	t.Helper()
	ok := true
	for i := 0; i < len(comp); i++ {
		for j := i + 1; j < len(comp); j++ {
			ok = assert.True(t, uf.Connected(comp[i], comp[j]),
				"expected %d and %d connected", comp[i], comp[j]) && ok
		}
	}
	return ok
}

// CheckDisjoint 断言 c1 和 c2 之间没有任何连通的元素对
func CheckDisjoint[T constraints.Integer](t testing.TB, uf Connectivity[T], c1, c2 []T) bool {
	t.Helper()
	ok := true
	for _, x := range c1 {
		for _, y := range c2 {
			ok = assert.False(t, uf.Connected(x, y),
				"expected %d and %d disjoint", x, y) && ok
		}
	}
	return ok
}

// CheckComponents 断言每个分组内部连通，不同分组之间互不连通
func CheckComponents[T constraints.Integer](t testing.TB, uf Connectivity[T], comps ...[]T) bool {
	t.Helper()
	ok := true
	for _, comp := range comps {
		ok = CheckConnected(t, uf, comp) && ok
	}
	for i := 0; i < len(comps); i++ {
		for j := i + 1; j < len(comps); j++ {
			ok = CheckDisjoint(t, uf, comps[i], comps[j]) && ok
		}
	}
	return ok
}

// QuickFind 是 O(n) 合并的朴素实现，用来给随机测试当参照
type QuickFind struct {
	ids        []int
	components int
}

func NewQuickFind(n int) *QuickFind {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return &QuickFind{ids: ids, components: n}
}

func (qf *QuickFind) Connected(p, q int) bool {
	return qf.ids[p] == qf.ids[q]
}

func (qf *QuickFind) Union(p, q int) {
	pID, qID := qf.ids[p], qf.ids[q]
	if pID == qID {
		return
	}
	for i := range qf.ids {
		if qf.ids[i] == pID {
			qf.ids[i] = qID
		}
	}
	qf.components--
}

func (qf *QuickFind) Components() int {
	return qf.components
}

// IsPrime 试除法判断素数，1 和 0 不是素数
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for j := 2; j*j <= n; j++ {
		if n%j == 0 {
			return false
		}
	}
	return true
}

// Pair 是一次 union 调用的两个参数
type Pair struct {
	P, Q int
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.P, p.Q)
}

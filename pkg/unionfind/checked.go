package unionfind

import "unionfind_tool/pkg/logutil"

// 下面这组函数不 panic，下标越界时返回 *errorutil.CodedError（CodeIndexOutOfRange），
// 出错时结构不会有任何修改

func (uf *UnionFind[T]) check(op string, idx ...T) error {
	for _, p := range idx {
		if err := uf.checkIndex(p); err != nil {
			logutil.Debug("unionfind: %s rejected: %v", op, err)
			return err
		}
	}
	return nil
}

// TryFind 同 Find，越界时返回错误
func (uf *UnionFind[T]) TryFind(p T) (T, error) {
	if err := uf.check("find", p); err != nil {
		return 0, err
	}
	return uf.find(p), nil
}

// TryUnion 同 Union，返回值表示是否真的合并了两个不同的集合
func (uf *UnionFind[T]) TryUnion(p, q T) (bool, error) {
	if err := uf.check("union", p, q); err != nil {
		return false, err
	}
	return uf.union(p, q), nil
}

// TryConnected 同 Connected，越界时返回错误
func (uf *UnionFind[T]) TryConnected(p, q T) (bool, error) {
	if err := uf.check("connected", p, q); err != nil {
		return false, err
	}
	return uf.find(p) == uf.find(q), nil
}

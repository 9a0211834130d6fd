package forestview

import (
	"fmt"

	"unionfind_tool/pkg/errorutil"
	"unionfind_tool/pkg/unionfind"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"golang.org/x/exp/constraints"
)

func largest[T constraints.Integer](s unionfind.Snapshot[T]) int {
	best := 0
	for i, p := range s.Parent {
		if int(p) == i {
			best = max(best, s.Size[i])
		}
	}
	return best
}

// Summary 输出缩进好的 JSON：
//
//	{"elements": 7, "components": 2, "largest": 5, "maxDepth": 1, "sets": [[0, 1, 2, 3, 4], [5, 6]]}
func Summary[T constraints.Integer](s unionfind.Snapshot[T]) (string, error) {
	maxDepth := 0
	for i := range s.Parent {
		maxDepth = max(maxDepth, s.Depth(T(i)))
	}

	fields := []struct {
		path  string
		value any
	}{
		{"elements", s.Len()},
		{"components", s.Components},
		{"largest", largest(s)},
		{"maxDepth", maxDepth},
		{"sets", s.Sets()},
	}

	out := "{}"
	for _, f := range fields {
		var err error
		out, err = sjson.Set(out, f.path, f.value)
		if err != nil {
			return "", errorutil.Wrap(errorutil.CodeRenderFailed, err, "forestview: summary field %s", f.path)
		}
	}
	return string(pretty.Pretty([]byte(out))), nil
}

// SummaryField 按 gjson 路径读取 Summary 里的字段，比如 "sets.#" 或 "sets.0"
func SummaryField(summary, path string) gjson.Result {
	return gjson.Get(summary, path)
}

// Describe 返回一句话描述，比如 "1,000 elements in 3 components (largest 998)"
func Describe[T constraints.Integer](s unionfind.Snapshot[T]) string {
	n, c := s.Len(), s.Components
	desc := fmt.Sprintf("%s %s in %s %s",
		humanize.Comma(int64(n)), english.PluralWord(n, "element", ""),
		humanize.Comma(int64(c)), english.PluralWord(c, "component", ""))
	if c == 0 {
		return desc
	}
	return fmt.Sprintf("%s (largest %s)", desc, humanize.Comma(int64(largest(s))))
}

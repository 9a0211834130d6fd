package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	MarkSame    = "|"
	MarkAdded   = "+"
	MarkRemoved = "-"
	MarkChanged = "~"
)

// DiffLine 是左右对照的一行，Left 是合并前，Right 是合并后
type DiffLine struct {
	Left  string
	Right string
	Mark  string
}

// Stats 统计各类行的数量
type Stats struct {
	Same    int
	Added   int
	Removed int
	Changed int
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// CompareForests 按行比较两次森林渲染的结果
// 相邻的“删除+插入”块会配对成 ~ 行，方便看出哪个节点换了父亲
func CompareForests(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []DiffLine
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete &&
			i+1 < len(diffs) &&
			diffs[i+1].Type == diffmatchpatch.DiffInsert {

			delLines := splitLines(d.Text)
			insLines := splitLines(diffs[i+1].Text)
			for k := 0; k < max(len(delLines), len(insLines)); k++ {
				line := DiffLine{Mark: MarkChanged}
				if k < len(delLines) {
					line.Left = delLines[k]
				} else {
					line.Mark = MarkAdded
				}
				if k < len(insLines) {
					line.Right = insLines[k]
				} else {
					line.Mark = MarkRemoved
				}
				result = append(result, line)
			}
			i++
			continue
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: MarkSame})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Mark: MarkRemoved})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Right: line, Mark: MarkAdded})
			}
		}
	}
	return result
}

// Changed 判断是否有任何不同的行
func Changed(diff []DiffLine) bool {
	for _, d := range diff {
		if d.Mark != MarkSame {
			return true
		}
	}
	return false
}

func Summarize(diff []DiffLine) Stats {
	var s Stats
	for _, d := range diff {
		switch d.Mark {
		case MarkSame:
			s.Same++
		case MarkAdded:
			s.Added++
		case MarkRemoved:
			s.Removed++
		case MarkChanged:
			s.Changed++
		}
	}
	return s
}

package diffutil

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// 按显示宽度补齐左列，树形符号和中文标签都能对齐
// 模糊宽度字符（比如 │ └）按宽度 1 计算
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// FormatSideBySide 左右对照输出，左边是 Before，右边是 After
func FormatSideBySide(diff []DiffLine) string {
	leftWidth := narrow.StringWidth("* Before")
	for _, d := range diff {
		leftWidth = max(leftWidth, narrow.StringWidth(d.Left))
	}

	var out []string
	header := fmt.Sprintf("%s  %s  %s", narrow.FillRight("* Before", leftWidth), " ", "* After")
	out = append(out, header)
	out = append(out, strings.Repeat("-", narrow.StringWidth(header)))

	for _, d := range diff {
		out = append(out, fmt.Sprintf("%s  %s  %s", narrow.FillRight(d.Left, leftWidth), d.Mark, d.Right))
	}

	return strings.Join(out, "\n")
}

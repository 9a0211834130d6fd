package treeprinter

import (
	"fmt"
	"strings"
)

const (
	StyleASCII   = 0
	StyleUnicode = 1
)

type MultiNode struct {
	Data     any // 节点数据，可以是任意类型
	Children []*MultiNode
}

type MultiTreePrinter struct {
	Root     *MultiNode
	Style    int                     // 0 = ascii, 1 = unicode
	FormatFn func(*MultiNode) string // 可选的自定义格式化函数
}

type branchSigns struct {
	last   string
	middle string
	space  string
}

func signsFor(style int) branchSigns {
	if style == StyleUnicode {
		return branchSigns{last: "└── ", middle: "├── ", space: "│   "}
	}
	return branchSigns{last: "'-- ", middle: ".-- ", space: "|   "}
}

func (p MultiTreePrinter) label(node *MultiNode) string {
	if p.FormatFn != nil {
		return p.FormatFn(node)
	}
	return fmt.Sprintf("%v", node.Data)
}

// 深度优先写入一棵子树，prefix 是当前层之前的缩进
func (p MultiTreePrinter) write(b *strings.Builder, node *MultiNode, prefix string, isLast bool) {
	signs := signsFor(p.Style)

	// 显式栈代替递归，并查集退化成长链时也不会爆栈
	type frame struct {
		node   *MultiNode
		prefix string
		isLast bool
	}
	stack := []frame{{node: node, prefix: prefix, isLast: isLast}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node == nil {
			continue
		}

		connector := signs.middle
		childPrefix := top.prefix + signs.space
		if top.isLast {
			connector = signs.last
			childPrefix = top.prefix + "    "
		}
		fmt.Fprintf(b, "%s%s%s\n", top.prefix, connector, p.label(top.node))

		// 逆序压栈，保证先输出第一个孩子
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:   top.node.Children[i],
				prefix: childPrefix,
				isLast: i == len(top.node.Children)-1,
			})
		}
	}
}

func PrintMultiTree(printer MultiTreePrinter) string {
	if printer.Root == nil {
		return "tree is empty\n"
	}

	var b strings.Builder
	printer.write(&b, printer.Root, "", true)
	return b.String()
}

// PrintForest 依次打印多棵树，每棵树都作为顶层输出，树之间不加空行
func PrintForest(roots []*MultiNode, style int, formatFn func(*MultiNode) string) string {
	if len(roots) == 0 {
		return "forest is empty\n"
	}

	printer := MultiTreePrinter{Style: style, FormatFn: formatFn}
	var b strings.Builder
	for _, root := range roots {
		printer.write(&b, root, "", true)
	}
	return b.String()
}

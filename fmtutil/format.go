// Package fmtutil 提供基于 {} 占位符的消息格式化。
//
// 与 fmt 的动词风格不同，这里的模板用 {} 表示"下一个位置参数"，
// 调用方不需要关心参数的具体类型。主要服务于错误标签这类
// 面向人类的消息构造。
package fmtutil

import (
	"fmt"
	"strings"
)

// placeholder 是模板中的占位符字面量。
const placeholder = "{}"

// Format 把位置参数依次代入模板中的 {} 占位符。
//
// 替换规则:
//   - 每个 {} 被下一个位置参数替换，参数用 %v 渲染
//   - \{} 输出字面量 {}，不消耗参数
//   - \\{} 输出一个反斜杠，占位符正常替换
//   - 参数用完后剩余的 {} 原样保留；多余的参数被忽略
//   - 没有参数时原样返回模板
//
// 示例:
//
//	fmtutil.Format("close {} of {} failed", "conn", "pool")
//	// => "close conn of pool failed"
func Format(pattern string, args ...any) string {
	if len(args) == 0 || !strings.Contains(pattern, placeholder) {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + len(args)*8)

	start := 0
	argIdx := 0
	for argIdx < len(args) {
		j := strings.Index(pattern[start:], placeholder)
		if j < 0 {
			break
		}
		j += start

		if j > 0 && pattern[j-1] == '\\' {
			if j > 1 && pattern[j-2] == '\\' {
				// \\{}：输出一个反斜杠，占位符正常替换
				b.WriteString(pattern[start : j-2])
				b.WriteByte('\\')
				b.WriteString(fmt.Sprintf("%v", args[argIdx]))
				argIdx++
			} else {
				// \{}：转义，原样输出 {}
				b.WriteString(pattern[start : j-1])
				b.WriteString(placeholder)
			}
			start = j + len(placeholder)
			continue
		}

		b.WriteString(pattern[start:j])
		b.WriteString(fmt.Sprintf("%v", args[argIdx]))
		argIdx++
		start = j + len(placeholder)
	}

	b.WriteString(pattern[start:])
	return b.String()
}

package fmtutil

import (
	"testing"
)

// ============== Format 测试 ==============

func TestFormat_SinglePlaceholder(t *testing.T) {
	got := Format("close {} failed", "conn")
	if got != "close conn failed" {
		t.Errorf("expected %q, got %q", "close conn failed", got)
	}
}

func TestFormat_MultiplePlaceholders(t *testing.T) {
	got := Format("close {} of {} failed", "conn", "pool")
	if got != "close conn of pool failed" {
		t.Errorf("expected %q, got %q", "close conn of pool failed", got)
	}
}

func TestFormat_NonStringArgs(t *testing.T) {
	got := Format("task {} retried {} times", 7, int64(3))
	if got != "task 7 retried 3 times" {
		t.Errorf("expected %q, got %q", "task 7 retried 3 times", got)
	}
}

func TestFormat_NoArgs(t *testing.T) {
	// 没有参数时模板原样返回
	got := Format("nothing to replace {}")
	if got != "nothing to replace {}" {
		t.Errorf("expected pattern unchanged, got %q", got)
	}
}

func TestFormat_NoPlaceholders(t *testing.T) {
	// 多余的参数被忽略
	got := Format("static message", "unused", 42)
	if got != "static message" {
		t.Errorf("expected pattern unchanged, got %q", got)
	}
}

func TestFormat_TooFewArgs(t *testing.T) {
	// 参数用完后剩余的占位符原样保留
	got := Format("{} and {} and {}", "a")
	if got != "a and {} and {}" {
		t.Errorf("expected %q, got %q", "a and {} and {}", got)
	}
}

func TestFormat_TooManyArgs(t *testing.T) {
	got := Format("only {}", "a", "b", "c")
	if got != "only a" {
		t.Errorf("expected %q, got %q", "only a", got)
	}
}

func TestFormat_EscapedPlaceholder(t *testing.T) {
	// \{} 输出字面量 {}，不消耗参数
	got := Format("literal \\{} then {}", "x")
	if got != "literal {} then x" {
		t.Errorf("expected %q, got %q", "literal {} then x", got)
	}
}

func TestFormat_DoubleEscapedPlaceholder(t *testing.T) {
	// \\{} 输出一个反斜杠，占位符正常替换
	got := Format("path c:\\\\{} missing", "temp")
	if got != "path c:\\temp missing" {
		t.Errorf("expected %q, got %q", "path c:\\temp missing", got)
	}
}

func TestFormat_EmptyPattern(t *testing.T) {
	if got := Format("", "a"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestFormat_PlaceholderAtBounds(t *testing.T) {
	got := Format("{} middle {}", "start", "end")
	if got != "start middle end" {
		t.Errorf("expected %q, got %q", "start middle end", got)
	}
}

func TestFormat_AdjacentPlaceholders(t *testing.T) {
	got := Format("{}{}{}", 1, 2, 3)
	if got != "123" {
		t.Errorf("expected %q, got %q", "123", got)
	}
}

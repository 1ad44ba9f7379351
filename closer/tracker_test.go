package closer

import (
	"errors"
	"fmt"
	"testing"
)

// ============== Tracker 测试 ==============

func TestTracker_CloseReverseOrder(t *testing.T) {
	var log []string
	tr := New()
	for _, name := range []string{"r1", "r2", "r3", "r4"} {
		tr.Add(newResource(name, &log))
	}

	if err := tr.Close(); err != nil {
		t.Errorf("Close should not return error: %v", err)
	}

	// 关闭顺序是加入顺序的严格逆序
	if fmt.Sprint(log) != "[r4 r3 r2 r1]" {
		t.Errorf("expected close order [r4 r3 r2 r1], got %v", log)
	}

	// 登记表被清空
	if len(tr.closeables) != 0 {
		t.Errorf("tracker should be empty after Close, got %d entries", len(tr.closeables))
	}
}

func TestTracker_CloseEmpty(t *testing.T) {
	tr := New()
	if err := tr.Close(); err != nil {
		t.Errorf("Close of empty tracker should return nil, got %v", err)
	}
}

func TestTracker_NewWith(t *testing.T) {
	r := newResource("r", nil)
	tr := NewWith(r)

	if err := tr.Close(); err != nil {
		t.Errorf("Close should not return error: %v", err)
	}
	if r.closed != 1 {
		t.Error("resource passed to NewWith should be closed")
	}
}

func TestTracker_ClearedEvenOnFailure(t *testing.T) {
	tr := New()
	tr.Add(newFailingResource("a", nil, "a failed"))
	tr.Add(newResource("b", nil))

	if err := tr.Close(); err == nil {
		t.Error("Close should return the aggregate error")
	}

	// 即使关闭失败，登记表也被清空
	if len(tr.closeables) != 0 {
		t.Error("tracker should be empty after a failing Close")
	}
}

func TestTracker_ClearedEvenOnFatal(t *testing.T) {
	tr := New()
	tr.Add(newResource("a", nil))
	tr.Add(newFatalResource("b", nil, "runtime broken"))

	err := tr.Close()
	if !IsFatal(err) {
		t.Errorf("expected fatal error, got %v", err)
	}

	// 致命错误传播之前登记表已被清空
	if len(tr.closeables) != 0 {
		t.Error("tracker should be empty after a fatal Close")
	}
}

func TestTracker_DoubleClose(t *testing.T) {
	r := newResource("r", nil)
	tr := NewWith(r)

	if err := tr.Close(); err != nil {
		t.Errorf("first Close should not return error: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if r.closed != 1 {
		t.Errorf("resource should be closed exactly once, got %d", r.closed)
	}
}

func TestTracker_ProtectSkipsClose(t *testing.T) {
	r1 := newResource("r1", nil)
	r2 := newResource("r2", nil)
	tr := New()
	tr.Add(r1)
	tr.Add(r2)

	tr.Protect()
	if err := tr.Close(); err != nil {
		t.Errorf("protected Close should return nil, got %v", err)
	}

	// 保护状态下不做任何关闭尝试，登记表保持原样
	if r1.closed != 0 || r2.closed != 0 {
		t.Error("protected Close must not attempt any release")
	}
	if len(tr.closeables) != 2 {
		t.Errorf("protected Close must leave the registry untouched, got %d entries", len(tr.closeables))
	}
}

func TestTracker_ExposeReenablesClose(t *testing.T) {
	var log []string
	r1 := newResource("r1", &log)
	r2 := newResource("r2", &log)
	tr := New()
	tr.Add(r1)
	tr.Add(r2)

	tr.Protect()
	tr.Close()

	// Expose 之后 Close 恢复对仍在登记表中资源的关闭
	tr.Expose()
	if err := tr.Close(); err != nil {
		t.Errorf("Close after Expose should not return error: %v", err)
	}
	if fmt.Sprint(log) != "[r2 r1]" {
		t.Errorf("expected close order [r2 r1], got %v", log)
	}
	if len(tr.closeables) != 0 {
		t.Error("tracker should be empty after Close following Expose")
	}
}

func TestTracker_ProtectExposeIdempotent(t *testing.T) {
	tr := NewWith(newResource("r", nil))

	tr.Protect()
	tr.Protect()
	if !tr.protected {
		t.Error("Protect should be idempotent")
	}

	tr.Expose()
	tr.Expose()
	if tr.protected {
		t.Error("Expose should be idempotent")
	}
}

func TestTracker_MessagePattern(t *testing.T) {
	tr := NewMessage("close resources for task {} failed", 7)
	tr.Add(newFailingResource("r", nil, "r failed"))

	err := tr.Close()
	var agg *AggregateError
	if !errors.As(err, &agg) {
		t.Fatalf("expected AggregateError, got %T", err)
	}
	if agg.Message() != "close resources for task 7 failed" {
		t.Errorf("unexpected label: %q", agg.Message())
	}
}

// 典型场景：按序加入 A、B、C，仅 B 可恢复失败。
// 期望尝试顺序 C、B、A，聚合错误只含 B 的失败，之后登记表为空。
func TestTracker_ExampleScenario(t *testing.T) {
	var log []string
	a := newResource("A", &log)
	b := newFailingResource("B", &log, "B failed")
	c := newResource("C", &log)

	tr := New()
	tr.Add(a)
	tr.Add(b)
	tr.Add(c)

	err := tr.Close()
	if fmt.Sprint(log) != "[C B A]" {
		t.Errorf("expected attempt order [C B A], got %v", log)
	}

	var agg *AggregateError
	if !errors.As(err, &agg) {
		t.Fatalf("expected AggregateError, got %T", err)
	}
	subs := agg.Errors()
	if len(subs) != 1 || subs[0].Error() != "B failed" {
		t.Errorf("aggregate should contain exactly B's failure, got %v", subs)
	}
	if len(tr.closeables) != 0 {
		t.Error("tracker should be empty afterwards")
	}
}

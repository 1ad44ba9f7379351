package closer

// Closeable 是被追踪资源需要满足的唯一契约。
//
// 任何提供单个可失败关闭操作的对象都可以被 Tracker 追踪，
// 标准库中大量类型（os.File、net.Conn、sql.DB 等）天然满足该接口。
//
// 返回值:
//   - error: 关闭失败时返回非 nil。普通错误会被视为可恢复失败并被
//     聚合；用 NewFatalError 包装的错误会被视为致命失败，立即中止
//     本次批量关闭。
type Closeable interface {
	Close() error
}

// CloseFunc 把一个普通函数适配成 Closeable。
//
// 适用于资源本身没有 Close 方法、或者关闭动作需要携带闭包状态的场景。
//
// 示例:
//
//	t.Add(closer.CloseFunc(func() error {
//	    return client.Shutdown(ctx)
//	}))
type CloseFunc func() error

// Close 实现 Closeable 接口。
func (f CloseFunc) Close() error {
	return f()
}

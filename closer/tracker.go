package closer

import (
	"github.com/qq1060656096/closeutil/sliceutil"
)

// Tracker 是作用域内待关闭资源的有序登记表。
//
// 登记表语义上是一个栈：后 Add 的资源先被关闭，关闭顺序永远是
// 加入顺序的严格逆序。Tracker 同时持有一个保护标志（默认不保护）
// 和一个可选的消息模板，模板仅在产生聚合错误时用于构造其标签。
//
// Tracker 不是并发安全的，见包文档。
type Tracker struct {
	closeables     []Closeable // closeables 按加入顺序存放，Close 时逆序遍历
	messagePattern string      // messagePattern 是聚合错误标签的消息模板，空字符串表示未设置
	args           []any       // args 是代入消息模板的位置参数
	protected      bool        // protected 为 true 时 Close 是空操作
}

// New 创建一个不带消息模板的空 Tracker。
func New() *Tracker {
	return &Tracker{}
}

// NewWith 创建一个不带消息模板的 Tracker，并立即登记一个资源。
//
// 等价于 New 之后紧跟一次 Add，适用于只追踪单个资源的场景。
func NewWith(c Closeable) *Tracker {
	t := New()
	t.Add(c)
	return t
}

// NewMessage 创建一个带消息模板的空 Tracker。
//
// 模板和位置参数仅在 Close 产生聚合错误时使用，用于构造聚合错误的
// 标签，占位符语法见 fmtutil.Format。
//
// 参数:
//   - messagePattern: 消息模板，空字符串等价于未设置
//   - args: 代入模板的位置参数
func NewMessage(messagePattern string, args ...any) *Tracker {
	return &Tracker{
		messagePattern: messagePattern,
		args:           args,
	}
}

// Add 登记一个资源。
//
// 新登记的资源会排在关闭顺序的最前面：它会先于所有此前登记、
// 尚未关闭的资源被关闭。Add 只修改登记表，没有其他副作用，
// 永远不会失败。
//
// 注意不要传入 nil：登记表不做检查，nil 资源会在 Close 时 panic。
func (t *Tracker) Add(c Closeable) {
	t.closeables = append(t.closeables, c)
}

// Protect 保护所有被追踪的资源不被 Close 释放。
//
// 调用后 Close 变为空操作，直到 Expose 被调用为止。
// 用于把资源所有权移出当前作用域。幂等。
func (t *Tracker) Protect() {
	t.protected = true
}

// Expose 解除 Protect 设置的保护，恢复 Close 的关闭能力。幂等。
func (t *Tracker) Expose() {
	t.protected = false
}

// Close 关闭所有被追踪的资源。
//
// 处于保护状态时立即返回 nil，登记表保持原样，不做任何关闭尝试。
//
// 否则以加入顺序的逆序对登记表中的全部资源执行批量关闭算法
// （见 CloseAll），并且无论关闭成功与否、是否产生聚合或致命错误，
// 登记表都保证被清空；若批量关闭产生了错误，清空之后原样返回。
//
// 在一次未保护的 Close 之后再次调用 Close 是空操作（登记表已空）。
func (t *Tracker) Close() error {
	if t.protected {
		return nil
	}

	defer func() {
		t.closeables = nil
	}()

	return CloseAll(sliceutil.Reversed(t.closeables), t.messagePattern, t.args...)
}

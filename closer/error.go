package closer

import (
	"errors"
	"strings"

	"github.com/qq1060656096/closeutil/sliceutil"
)

// 预定义的哨兵错误，可使用 errors.Is 进行判断。
//
// 示例:
//
//	if err := t.Close(); errors.Is(err, closer.ErrCloseFailed) {
//	    // 至少有一个资源关闭失败
//	}
var (
	// ErrCloseFailed 表示批量关闭过程中至少有一个资源关闭失败。
	// 它同时也是 AggregateError 在未设置消息模板时的默认标签。
	ErrCloseFailed = errors.New("closeutil.closer: close resources failed")
)

// AggregateError 是批量关闭算法产生的聚合错误。
//
// 一次批量关闭最多创建一个 AggregateError：第一个可恢复失败出现时
// 惰性创建，之后的可恢复失败按遭遇顺序追加进来。它携带一个
// 人类可读的标签（由消息模板格式化而来，未设置模板时使用
// ErrCloseFailed 的文本）和全部底层失败。
//
// AggregateError 与标准库错误链完全兼容：
//   - errors.Is(err, ErrCloseFailed) 恒为 true
//   - Unwrap() []error 暴露底层失败，errors.Is/As 可以继续下钻
type AggregateError struct {
	message string  // message 是格式化后的标签
	errs    []error // errs 按遭遇顺序存放全部可恢复失败
}

// newAggregateError 创建一个空的聚合错误。
// message 为空字符串时使用 ErrCloseFailed 的文本作为默认标签。
func newAggregateError(message string) *AggregateError {
	if message == "" {
		message = ErrCloseFailed.Error()
	}
	return &AggregateError{message: message}
}

// append 追加一个可恢复失败。
func (e *AggregateError) append(err error) {
	e.errs = append(e.errs, err)
}

// Error 实现 error 接口，格式为 "标签: 失败1; 失败2; ..."。
func (e *AggregateError) Error() string {
	if len(e.errs) == 0 {
		return e.message
	}
	parts := make([]string, len(e.errs))
	for i, err := range e.errs {
		parts[i] = err.Error()
	}
	return e.message + ": " + strings.Join(parts, "; ")
}

// Message 返回格式化后的标签。
func (e *AggregateError) Message() string {
	return e.message
}

// Errors 返回按遭遇顺序排列的全部底层失败。
//
// 返回的是副本，修改它不会影响聚合错误本身。
func (e *AggregateError) Errors() []error {
	return sliceutil.Clone(e.errs)
}

// Unwrap 支持标准库错误链，使 errors.Is/As 能匹配到任意底层失败。
func (e *AggregateError) Unwrap() []error {
	return e.errs
}

// Is 使 errors.Is(err, ErrCloseFailed) 对所有聚合错误成立。
func (e *AggregateError) Is(target error) bool {
	return target == ErrCloseFailed
}

// FatalError 是致命失败的标记类型。
//
// 资源在关闭时返回用 NewFatalError 包装的错误，即声明运行环境本身
// 已经损坏：批量关闭算法会立即停止尝试剩余资源，并把此前已累计的
// 聚合错误附加到该致命错误上（作为诊断上下文，而不是 cause），
// 然后把原始错误值原样向上传播。
type FatalError struct {
	err       error           // err 是资源返回的底层致命错误
	aggregate *AggregateError // aggregate 是中止前已累计的聚合错误，可能为 nil
}

// NewFatalError 把一个错误标记为致命失败。
//
// 返回的错误可以通过 IsFatal 或 errors.As 判断，
// errors.Is 对底层错误依然成立。
func NewFatalError(err error) error {
	return &FatalError{err: err}
}

// Error 实现 error 接口。
func (e *FatalError) Error() string {
	return "closeutil.closer: fatal: " + e.err.Error()
}

// Unwrap 返回底层致命错误。
//
// 注意附加的聚合错误不在错误链上：它是诊断上下文而非 cause，
// 需要通过 Aggregate 方法获取。
func (e *FatalError) Unwrap() error {
	return e.err
}

// Aggregate 返回致命失败发生前已累计的聚合错误。
// 如果中止前没有可恢复失败，返回 nil。
func (e *FatalError) Aggregate() *AggregateError {
	return e.aggregate
}

// IsFatal 判断一个错误是否为（或包装了）致命失败。
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

package closer

import (
	"errors"

	"github.com/qq1060656096/closeutil/fmtutil"
)

// Close 按给定顺序依次尝试关闭所有资源。
//
// 这是批量关闭算法的便捷入口，message 直接作为聚合错误的标签使用
// （不做占位符替换）。需要消息模板或已有资源切片时使用 CloseAll。
//
// 参数:
//   - message: 聚合错误的标签，空字符串表示使用默认标签
//   - closeables: 需要关闭的资源，按希望的关闭顺序排列
//
// 返回值:
//   - nil: 全部资源关闭成功
//   - *AggregateError: 至少有一个资源关闭失败（可恢复），
//     全部失败按遭遇顺序列在其中
//   - 致命错误: 某个资源返回了致命失败，剩余资源不再尝试
func Close(message string, closeables ...Closeable) error {
	return CloseAll(closeables, message)
}

// CloseAll 按给定顺序依次尝试关闭所有资源。
//
// 该函数不依赖 Tracker，可以单独使用。资源按 closeables 的顺序被
// 逐个尝试关闭（Tracker 会以获取顺序的逆序传入；一次性调用可以传入
// 任意顺序）。
//
// 算法:
//  1. 资源关闭成功时继续处理下一个。
//  2. 资源以可恢复失败告终时：若聚合错误尚未创建，此时惰性创建
//     （标签由 args 代入 messagePattern 得到，未设置模板时使用
//     默认标签）；把该失败追加到聚合错误上，然后继续处理下一个
//     资源——可恢复失败绝不中断循环。
//  3. 资源以致命失败（包装了 FatalError 的错误）告终时：立即停止
//     处理剩余资源；若此前已有聚合错误，将其附加到致命错误上作为
//     诊断上下文；把原始错误原样向上传播，不再包装。
//  4. 循环正常结束后，若聚合错误存在则返回它，否则返回 nil。
//
// 每个资源最多被尝试关闭一次，任何失败都不会被静默丢弃。
//
// 参数:
//   - closeables: 需要关闭的资源，按希望的关闭顺序排列
//   - messagePattern: 聚合错误标签的消息模板，占位符语法见 fmtutil.Format，
//     空字符串表示未设置
//   - args: 代入消息模板的位置参数
func CloseAll(closeables []Closeable, messagePattern string, args ...any) error {
	var agg *AggregateError

	for _, c := range closeables {
		err := c.Close()
		if err == nil {
			continue
		}

		var fe *FatalError
		if errors.As(err, &fe) {
			// 致命失败：挂上已累计的聚合错误后立即传播
			fe.aggregate = agg
			return err
		}

		if agg == nil {
			agg = newAggregateError(fmtutil.Format(messagePattern, args...))
		}
		agg.append(err)
	}

	if agg != nil {
		return agg
	}
	return nil
}

/*
Package closer 提供了一个作用域资源追踪与批量关闭框架。

# 概述

closer 包实现了一个轻量的资源生命周期聚合器，支持：
  - 资源追踪：在一个逻辑作用域内登记所有已获取的资源
  - 批量关闭：作用域结束时保证每个资源都会被尝试关闭一次
  - 错误聚合：把所有可恢复的关闭失败合并为一个复合错误，而不是只保留第一个
  - 所有权转移：通过 Protect/Expose 把被追踪资源的所有权移出作用域，之后还可以收回

# 核心概念

## Tracker（追踪器）

Tracker 是一个有序的待关闭资源登记表，语义上是一个栈：
后加入的资源先被关闭（关闭顺序永远是加入顺序的严格逆序）。

主要功能：
  - Add: 登记一个资源
  - Protect: 保护所有被追踪的资源，使 Close 变成空操作
  - Expose: 解除保护，恢复 Close 的关闭能力
  - Close: 逆序关闭所有被追踪的资源，并清空登记表

## Closeable（可关闭资源）

Closeable 是被追踪资源需要满足的唯一契约：

	type Closeable interface {
	    Close() error
	}

普通函数可以通过 CloseFunc 适配成 Closeable。

## 批量关闭算法

Close 和 CloseAll 是独立于 Tracker 的包级入口，按给定顺序依次尝试
关闭每个资源：

  - 某个资源关闭失败（可恢复失败）不会阻止后续资源的关闭尝试，
    失败会被收集进一个惰性创建的 AggregateError；
  - 遇到致命失败（包装了 FatalError 的错误）时立即停止，
    已累计的聚合错误会被附加到致命错误上，然后原样向上传播。

# 使用示例

## 基础用法

	t := closer.NewMessage("close resources for request {} failed", reqID)

	f, err := os.Open(path)
	if err != nil {
	    return err
	}
	t.Add(f)

	conn, err := dial(addr)
	if err != nil {
	    t.Close() // f 会被关闭
	    return err
	}
	t.Add(conn)

	defer t.Close() // 先关 conn，再关 f

## 所有权转移

当资源需要在作用域之外继续存活时，调用 Protect 使后续的 Close
不再释放它们；需要释放时再调用 Expose：

	t := closer.NewWith(conn)
	defer t.Close()

	if handoff {
	    t.Protect() // conn 交给别人管，Close 变为空操作
	    return conn, nil
	}

## 一次性批量关闭

不构造 Tracker 也可以直接关闭一组资源：

	err := closer.Close("shutdown failed", conn, file, listener)

# 错误处理

包中定义了以下错误类型：

  - ErrCloseFailed: 哨兵错误，所有 AggregateError 都能通过
    errors.Is(err, ErrCloseFailed) 匹配
  - AggregateError: 聚合错误，携带格式化后的标签和按遭遇顺序排列的
    全部可恢复失败，可通过 errors.As 取出
  - FatalError: 致命错误标记，资源通过返回 NewFatalError 包装的错误
    声明运行环境已经损坏，批量关闭会立即中止

任何失败都不会被静默丢弃：调用方要么通过聚合错误看到每一个
可恢复失败，要么直接看到致命错误（聚合错误作为附加上下文挂在其上）。

# 并发安全

Tracker 不是并发安全的：Add、Protect、Expose、Close 都必须由拥有
该作用域的单个 goroutine 串行调用，跨 goroutine 共享时需要调用方
自行加锁。在 Close 执行过程中重入调用 Protect/Expose 属于未定义行为。

# 适用场景

  - 函数内按顺序获取多个资源，失败或返回时统一释放
  - 构造过程中途失败时回滚已创建的部分资源
  - 需要把部分资源的所有权移交给调用方的工厂函数
*/
package closer

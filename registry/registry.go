package registry

import (
	"context"
	"sync"

	"github.com/qq1060656096/closeutil/closer"
	"github.com/qq1060656096/closeutil/sliceutil"
)

// defaultGroupName 是使用 NewGroup 创建单组资源管理器时的默认组名。
const defaultGroupName = "defaultGroup"

// New 创建一个新的资源管理器。
//
// 参数:
//   - opener: 资源打开器，用于根据配置创建资源实例
//   - closer: 资源关闭器，用于关闭/销毁资源（可以为 nil）
//
// 类型参数:
//   - C: 配置类型
//   - T: 资源类型
func New[C any, T any](opener Opener[C, T], closer Closer[T]) Manager[C, T] {
	return &manager[C, T]{
		groups: make(map[string][]*entry[C, T]),
		opener: opener,
		closer: closer,
	}
}

// entry 表示一个已注册资源的内部状态。
//
// 类型参数:
//   - C: 配置类型
//   - T: 资源类型
type entry[C any, T any] struct {
	name  string // name 是资源在组内的唯一标识
	cfg   C      // cfg 是创建资源所需的配置
	val   T      // val 是已创建的资源实例
	ready bool   // ready 标记资源是否已通过 opener 完成初始化
}

// manager 是 Manager 接口的具体实现，负责管理多个资源组。
//
// 组和组内资源都按切片保存以保留顺序：关闭时组按添加顺序的逆序、
// 组内资源按注册顺序的逆序释放。
//
// 类型参数:
//   - C: 配置类型
//   - T: 资源类型
type manager[C any, T any] struct {
	mu         sync.RWMutex              // mu 用于保护并发访问
	groupNames []string                  // groupNames 按添加顺序存放所有组名
	groups     map[string][]*entry[C, T] // groups 存储所有资源组，key 为组名，值为按注册顺序排列的资源
	opener     Opener[C, T]              // opener 用于创建资源实例
	closer     Closer[T]                 // closer 用于关闭资源实例（可为 nil）
}

// findEntry 在一组资源中按名称查找，返回资源和是否存在。
func findEntry[C any, T any](entries []*entry[C, T], name string) (*entry[C, T], bool) {
	for _, e := range entries {
		if e.name == name {
			return e, true
		}
	}
	return nil, false
}

// Group 根据名称获取资源组。
//
// 如果指定名称的组不存在，返回 ErrGroupNotFound 错误。
// 返回的 Group 对象可用于在该组内注册和获取资源。
func (m *manager[C, T]) Group(name string) (Group[C, T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.groups[name]; !ok {
		return nil, NewErrGroupNotFound(name)
	}

	return &group[C, T]{
		name: name,
		m:    m,
	}, nil
}

// MustGroup 根据名称获取资源组，如果组不存在则触发 panic。
//
// 此方法是 Group 的便捷封装，适用于确定组一定存在的场景。
// 如果不确定组是否存在，请使用 Group 方法并处理返回的错误。
func (m *manager[C, T]) MustGroup(name string) Group[C, T] {
	g, err := m.Group(name)
	if err != nil {
		panic(err)
	}
	return g
}

// AddGroup 添加一个新的资源组。
//
// 如果指定名称的组不存在，则创建一个新的空组。
// 如果组已存在，不会进行任何操作。
//
// 返回值:
//   - false: 组是新创建的
//   - true: 组已经存在（未做任何修改）
func (m *manager[C, T]) AddGroup(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.groups[name]; ok {
		return true
	}
	m.groups[name] = nil
	m.groupNames = append(m.groupNames, name)
	return false
}

// ListGroupNames 返回所有已注册的组名列表，按添加顺序排列。
func (m *manager[C, T]) ListGroupNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sliceutil.Clone(m.groupNames)
}

// Close 关闭管理器中所有已初始化的资源。
//
// 组按添加顺序的逆序、组内资源按注册顺序的逆序依次尝试关闭，
// 关闭动作委托给 closer.CloseAll：可恢复失败被聚合为一个
// AggregateError，致命失败立即中止并直接传播。
// 无论关闭结果如何，管理器都会先被重置为空状态。
func (m *manager[C, T]) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cs []closer.Closeable
	for _, groupName := range sliceutil.Reversed(m.groupNames) {
		cs = append(cs, m.closeablesLocked(ctx, groupName)...)
	}

	m.groups = make(map[string][]*entry[C, T])
	m.groupNames = nil

	return closer.CloseAll(cs, "close registered resources failed")
}

// closeablesLocked 把一个组内所有已初始化的资源适配成 closer.Closeable，
// 按注册顺序的逆序排列。调用方必须持有写锁。
//
// 返回的闭包持有资源引用，在锁释放后执行依然有效；关闭失败时
// 错误会被包上组名和资源名信息（致命错误标记经 %w 链保留）。
func (m *manager[C, T]) closeablesLocked(ctx context.Context, groupName string) []closer.Closeable {
	entries := m.groups[groupName]
	cs := make([]closer.Closeable, 0, len(entries))
	for _, e := range sliceutil.Reversed(entries) {
		if !e.ready || m.closer == nil {
			continue
		}
		e := e
		cs = append(cs, closer.CloseFunc(func() error {
			if err := m.closer(ctx, e.val); err != nil {
				return NewErrCloseResourceFailed(groupName, e.name, err)
			}
			return nil
		}))
	}
	return cs
}

// removeGroupLocked 从管理器中删除一个组。调用方必须持有写锁。
func (m *manager[C, T]) removeGroupLocked(name string) {
	delete(m.groups, name)
	for i, n := range m.groupNames {
		if n == name {
			m.groupNames = append(m.groupNames[:i], m.groupNames[i+1:]...)
			return
		}
	}
}

// group 是 Group 接口的具体实现，代表一个资源组。
//
// group 通过持有 manager 的引用来访问和操作资源，
// 所有操作都会通过 manager 的锁来保证并发安全。
//
// 类型参数:
//   - C: 配置类型
//   - T: 资源类型
type group[C any, T any] struct {
	name string         // name 是该组的唯一标识名称
	m    *manager[C, T] // m 是所属的资源管理器
}

// Get 根据名称获取资源，支持惰性初始化。
//
// 实现采用双重检查锁定（Double-Checked Locking）模式：
//  1. 首先使用读锁检查资源是否已初始化
//  2. 如果已初始化，直接返回缓存的资源
//  3. 如果未初始化，升级为写锁并调用 opener 创建资源
//  4. 创建后标记为 ready，后续调用将直接返回
//
// 可能返回的错误:
//   - ErrGroupNotFound: 组不存在（可能已被关闭）
//   - ErrResourceNotFound: 资源未注册
//   - opener 返回的错误: 资源创建失败
func (g *group[C, T]) Get(ctx context.Context, name string) (T, error) {
	var zero T

	// 读锁：快速路径，检查资源是否已初始化
	g.m.mu.RLock()
	entries, ok := g.m.groups[g.name]
	if !ok {
		g.m.mu.RUnlock()
		return zero, NewErrGroupNotFound(g.name)
	}

	e, ok := findEntry(entries, name)
	if !ok {
		g.m.mu.RUnlock()
		return zero, NewErrResourceNotFound(g.name, name)
	}

	if e.ready {
		val := e.val
		g.m.mu.RUnlock()
		return val, nil
	}
	g.m.mu.RUnlock()

	// 写锁：慢速路径，惰性创建资源
	g.m.mu.Lock()
	defer g.m.mu.Unlock()

	// 双重检查：在获取写锁期间，其他 goroutine 可能已删除组或资源
	entries, ok = g.m.groups[g.name]
	if !ok {
		return zero, NewErrGroupNotFound(g.name)
	}

	e, ok = findEntry(entries, name)
	if !ok {
		return zero, NewErrResourceNotFound(g.name, name)
	}

	if e.ready {
		return e.val, nil
	}

	val, err := g.m.opener(ctx, e.cfg)
	if err != nil {
		return zero, err
	}

	e.val = val
	e.ready = true
	return val, nil
}

// MustGet 根据名称获取资源，如果获取失败则触发 panic。
//
// 此方法是 Get 的便捷封装，适用于确定资源一定存在且能成功创建的场景。
// 如果不确定，请使用 Get 方法并处理返回的错误。
func (g *group[C, T]) MustGet(ctx context.Context, name string) T {
	val, err := g.Get(ctx, name)
	if err != nil {
		panic(err)
	}
	return val
}

// Config 根据名称获取资源注册时的配置。
//
// 可能返回的错误:
//   - ErrGroupNotFound: 组不存在（可能已被关闭）
//   - ErrResourceNotFound: 资源未注册
func (g *group[C, T]) Config(ctx context.Context, name string) (C, error) {
	var zero C

	g.m.mu.RLock()
	defer g.m.mu.RUnlock()

	entries, ok := g.m.groups[g.name]
	if !ok {
		return zero, NewErrGroupNotFound(g.name)
	}

	e, ok := findEntry(entries, name)
	if !ok {
		return zero, NewErrResourceNotFound(g.name, name)
	}

	return e.cfg, nil
}

// MustConfig 根据名称获取资源注册时的配置，如果获取失败则触发 panic。
func (g *group[C, T]) MustConfig(ctx context.Context, name string) C {
	cfg, err := g.Config(ctx, name)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Register 向组中注册一个新的资源配置。
//
// 注意事项:
//   - 此方法只保存配置，不会立即创建资源实例
//   - 资源将在首次通过 Get 访问时惰性初始化
//   - 如果资源名已存在，不会覆盖原有配置
//   - 如果组不存在（已被关闭），会自动重新创建组
//   - 注册顺序被保留，关闭时按其逆序释放
//
// 返回值:
//   - isNew: true 表示新注册成功，false 表示资源名已存在
//   - err: 目前始终为 nil，保留用于将来扩展
func (g *group[C, T]) Register(ctx context.Context, name string, cfg C) (bool, error) {
	g.m.mu.Lock()
	defer g.m.mu.Unlock()

	entries, ok := g.m.groups[g.name]
	if !ok {
		g.m.groupNames = append(g.m.groupNames, g.name)
	}

	if _, exists := findEntry(entries, name); exists {
		return false, nil
	}

	g.m.groups[g.name] = append(entries, &entry[C, T]{name: name, cfg: cfg})
	return true, nil
}

// Unregister 从组中注销指定资源。
//
// 如果资源已初始化（ready=true），会先调用 closer 关闭资源。
// 无论关闭成功与否，资源都会从组中移除。
//
// 返回值:
//   - ErrGroupNotFound: 组不存在
//   - ErrResourceNotFound: 资源不存在
//   - ErrCloseResourceFailed: 资源已移除，但关闭失败
//   - nil: 注销成功
func (g *group[C, T]) Unregister(ctx context.Context, name string) error {
	g.m.mu.Lock()
	defer g.m.mu.Unlock()

	entries, ok := g.m.groups[g.name]
	if !ok {
		return NewErrGroupNotFound(g.name)
	}

	e, ok := findEntry(entries, name)
	if !ok {
		return NewErrResourceNotFound(g.name, name)
	}

	for i, cur := range entries {
		if cur == e {
			g.m.groups[g.name] = append(entries[:i], entries[i+1:]...)
			break
		}
	}

	if e.ready && g.m.closer != nil {
		if err := g.m.closer(ctx, e.val); err != nil {
			return NewErrCloseResourceFailed(g.name, name, err)
		}
	}

	return nil
}

// List 返回组内所有已注册的资源名称列表，按注册顺序排列。
//
// 如果组不存在（已被关闭），返回空列表。
func (g *group[C, T]) List() []string {
	g.m.mu.RLock()
	defer g.m.mu.RUnlock()

	entries, ok := g.m.groups[g.name]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}

// Close 关闭组内所有已初始化的资源，并从管理器中移除整个组。
//
// 资源按注册顺序的逆序依次尝试关闭，关闭动作委托给
// closer.CloseAll：可恢复失败被聚合为一个 AggregateError
// （标签中带有组名），致命失败立即中止并直接传播。
// 无论关闭结果如何，整个组都会先从管理器中删除。
//
// 返回值:
//   - nil: 全部资源关闭成功，或组不存在（可能已被关闭）
//   - error: closer.CloseAll 的聚合或致命错误
func (g *group[C, T]) Close(ctx context.Context) error {
	g.m.mu.Lock()
	defer g.m.mu.Unlock()

	if _, ok := g.m.groups[g.name]; !ok {
		return nil
	}

	cs := g.m.closeablesLocked(ctx, g.name)
	g.m.removeGroupLocked(g.name)

	return closer.CloseAll(cs, "close resources in group {} failed", g.name)
}

// NewGroup 创建一个独立的资源组（单组模式）。
//
// 此函数是 New 的简化版本，适用于不需要多组管理的场景。
// 它会创建一个内部 manager 并预创建一个默认组，直接返回该组的引用。
//
// 使用场景:
//   - 应用只需要管理一类资源，不需要分组
//   - 快速原型开发，简化 API 调用
//
// 参数:
//   - opener: 资源打开器，用于根据配置创建资源实例
//   - closer: 资源关闭器，用于关闭/销毁资源（可以为 nil）
//
// 类型参数:
//   - C: 配置类型
//   - T: 资源类型
//
// 示例:
//
//	group := NewGroup(dbOpener, dbCloser)
//	group.Register(ctx, "main", dbConfig)
//	db, err := group.Get(ctx, "main")
func NewGroup[C any, T any](
	opener Opener[C, T],
	closer Closer[T],
) Group[C, T] {
	m := &manager[C, T]{
		groups: make(map[string][]*entry[C, T]),
		opener: opener,
		closer: closer,
	}

	// 预创建默认 group，使用 defaultGroupName 作为组名
	m.groups[defaultGroupName] = nil
	m.groupNames = append(m.groupNames, defaultGroupName)
	return &group[C, T]{
		name: defaultGroupName,
		m:    m,
	}
}

// Package events 实现节点生命周期事件通知
package events

import (
	"context"
	"sync"

	"github.com/alexandria-dht/go-alexandria/pkg/lib/log"
)

var logger = log.Logger("core/events")

// ============================================================================
//                              Event 实现
// ============================================================================

// Event 命名类型化广播通道
//
// 每个实例对应节点的一个生命周期事件。Trigger 将负载投递给当前
// 注册的全部订阅者（广播，非负载均衡）；Subscribe 返回私有的
// 有界接收队列。名称仅用于诊断。
type Event[T any] struct {
	name string

	// mu 保护订阅者集合
	mu   sync.Mutex
	subs map[*Subscription[T]]struct{}

	// triggerMu 串行化广播
	//
	// 与 mu 分离：广播可能因订阅队列满而长时间阻塞，
	// 期间订阅/退订仍可取得 mu 正常进行。
	triggerMu sync.Mutex
}

// New 创建命名事件
func New[T any](name string) *Event[T] {
	return &Event[T]{
		name: name,
		subs: make(map[*Subscription[T]]struct{}),
	}
}

// Name 返回事件名称
func (e *Event[T]) Name() string {
	return e.name
}

// SubscriberCount 返回当前订阅者数量
func (e *Event[T]) SubscriberCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}

// Trigger 向所有当前订阅者广播负载
//
// 并发的 Trigger 按获取内部锁的顺序串行执行，因此单个事件上
// 存在唯一的全局投递顺序，每个订阅者按该顺序接收。本次广播
// 只覆盖调用时已注册的订阅者快照。
//
// 某订阅者队列已满时，Trigger 阻塞直至其腾出空间（背压：慢消费
// 者拖住本事件的所有发布方，而不是静默丢弃负载）。已关闭的订阅
// 被直接跳过，不影响其余订阅者。
//
// ctx 在广播中途取消时返回 ctx.Err()，此时本次广播为尽力而为的
// 部分投递：快照中排在取消点之前的订阅者已收到负载，之后的不会
// 再收到。
func (e *Event[T]) Trigger(ctx context.Context, payload T) error {
	logger.Debug("触发事件", "event", e.name)

	e.triggerMu.Lock()
	defer e.triggerMu.Unlock()

	// 本次广播的订阅者快照
	e.mu.Lock()
	snapshot := make([]*Subscription[T], 0, len(e.subs))
	for sub := range e.subs {
		snapshot = append(snapshot, sub)
	}
	e.mu.Unlock()

	for _, sub := range snapshot {
		select {
		case sub.ch <- payload:
		case <-sub.done:
			// 订阅已关闭，跳过
		case <-ctx.Done():
			logger.Debug("广播被取消", "event", e.name)
			return ctx.Err()
		}
	}

	return nil
}

// Subscribe 注册新订阅者并返回其接收句柄
//
// 默认队列容量为 DefaultQueueSize，可用 BufSize 覆盖。调用方
// 必须在所有退出路径上调用返回句柄的 Close（通常通过 defer），
// 否则订阅者集合会泄漏死条目。
func (e *Event[T]) Subscribe(opts ...SubscriptionOpt) *Subscription[T] {
	settings := &subscriptionSettings{
		Buffer: DefaultQueueSize,
	}
	for _, opt := range opts {
		opt(settings)
	}

	sub := &Subscription[T]{
		event: e,
		ch:    make(chan T, settings.Buffer),
		done:  make(chan struct{}),
	}

	e.mu.Lock()
	e.subs[sub] = struct{}{}
	e.mu.Unlock()

	return sub
}

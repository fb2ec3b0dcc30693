// Package events 实现节点生命周期事件通知
package events

import (
	"context"
	"errors"
	"sync"
)

// ============================================================================
//                              错误定义
// ============================================================================

var (
	// ErrSubscriptionClosed 订阅已关闭且队列已排空
	ErrSubscriptionClosed = errors.New("subscription closed")
)

// ============================================================================
//                              Subscription 实现
// ============================================================================

// Subscription 事件订阅（私有接收队列）
//
// 由 Event.Subscribe 创建。队列容量固定，发送端由事件持有，
// 接收端由订阅者持有，二者共享至 Close 为止。
type Subscription[T any] struct {
	event *Event[T]

	// ch 有界负载队列
	ch chan T

	// done 关闭信号，通知在途广播跳过本订阅
	done chan struct{}

	closeOnce sync.Once
}

// Out 返回接收通道
//
// 通道在 Close 后关闭，但已入队的负载仍可读取直至排空。
// 适合 for range 消费；需要取消语义时使用 Receive。
func (s *Subscription[T]) Out() <-chan T {
	return s.ch
}

// Receive 阻塞接收下一个负载
//
// 负载严格按 Trigger 的全局顺序到达。订阅关闭且队列排空后返回
// ErrSubscriptionClosed。ctx 取消只放弃本次接收，已入队的负载
// 保留在队列中。
func (s *Subscription[T]) Receive(ctx context.Context) (T, error) {
	var zero T
	select {
	case v, ok := <-s.ch:
		if !ok {
			return zero, ErrSubscriptionClosed
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Close 取消订阅
//
// Close 是并发安全的，可多次调用。关闭后：
//  1. 从事件的订阅者集合移除（此后触发的负载不再投递）
//  2. 通知在途广播跳过本订阅（阻塞在本订阅满队列上的广播立即恢复）
//  3. 与在途广播汇合后关闭通道，残留负载仍可读取
//
// 必须在订阅者的所有退出路径上调用，通常通过 defer。
func (s *Subscription[T]) Close() error {
	s.closeOnce.Do(func() {
		s.event.mu.Lock()
		delete(s.event.subs, s)
		s.event.mu.Unlock()

		close(s.done)

		// 等待在途广播结束，避免与发送并发地关闭通道
		s.event.triggerMu.Lock()
		//lint:ignore SA2001 仅作为与在途广播的汇合点
		s.event.triggerMu.Unlock()

		close(s.ch)
	})

	return nil
}

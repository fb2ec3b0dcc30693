// Package events 实现节点生命周期事件通知
package events

import (
	"context"
	"sync"
)

// ============================================================================
//                              Awaitable 实现
// ============================================================================

// Awaitable 记忆化等待原语
//
// 包装一次性延迟计算：无论多少调用方等待，底层计算至多执行一次，
// 结果（含失败）被缓存并对所有当前与后续等待方重放。典型用法是
// 让协议驱动方与任意数量的外部观察者等待同一次握手完成计算，
// 而不重复其副作用。
type Awaitable[T any] struct {
	fn   func(context.Context) (T, error)
	once sync.Once

	// done 在唯一一次执行结束后关闭，此后 val/err 只读
	done chan struct{}
	val  T
	err  error
}

// NewAwaitable 包装延迟计算 fn
//
// fn 不会立即执行，首个 Await 才启动它。
func NewAwaitable[T any](fn func(context.Context) (T, error)) *Awaitable[T] {
	return &Awaitable[T]{
		fn:   fn,
		done: make(chan struct{}),
	}
}

// IsDone 返回底层计算是否已完成（成功或失败均算完成）
func (a *Awaitable[T]) IsDone() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}

// Await 等待计算结果
//
// 首个 Await 启动唯一一次执行；并发或后续的 Await 加入在途执行，
// 已完成时立即返回缓存结果。失败与成功同样被缓存并对每个等待方
// 重放，不会重试。
//
// ctx 取消只放弃本次等待：计算在独立的 goroutine 中继续运行，
// 其结果仍会被缓存供其他等待方使用。
func (a *Awaitable[T]) Await(ctx context.Context) (T, error) {
	a.once.Do(func() {
		go func() {
			defer close(a.done)
			a.val, a.err = a.fn(context.Background())
		}()
	})

	select {
	case <-a.done:
		return a.val, a.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

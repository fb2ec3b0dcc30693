// Package events 实现节点生命周期事件通知
//
// 提供类型化的事件广播/订阅机制，支持：
//   - 多订阅者广播（非负载均衡）
//   - 有界队列与背压（慢消费者阻塞发布，不丢失负载）
//   - 单事件全局投递顺序
//   - 已关闭订阅不阻塞广播
//   - 记忆化等待原语（Awaitable）
//
// # 快速开始
//
//	// 创建注册表（节点构造时一次）
//	evs := events.NewEvents()
//
//	// 订阅事件
//	sub := evs.HandshakeComplete.Subscribe()
//	defer sub.Close()
//
//	go func() {
//	    for {
//	        session, err := sub.Receive(ctx)
//	        if err != nil {
//	            return
//	        }
//	        // 处理会话
//	        _ = session
//	    }
//	}()
//
//	// 触发事件（握手驱动方）
//	_ = evs.HandshakeComplete.Trigger(ctx, session)
//
// # Fx 模块
//
//	app := fx.New(
//	    events.Module(),
//	    fx.Invoke(func(evs *events.Events) {
//	        sub := evs.SessionCreated.Subscribe()
//	        // ...
//	        defer sub.Close()
//	    }),
//	)
//
// # 投递语义
//
// Trigger 串行执行，单事件上存在唯一全局顺序；每个订阅者接收的
// 序列恰是其注册期间触发的子序列。某订阅队列满时整个 Trigger
// 阻塞（背压优先于公平性）。Trigger 的 ctx 在广播中途取消时为
// 尽力而为的部分投递，调用方可见 ctx.Err()。
//
// # 并发安全
//
// 订阅者集合由每个事件自己的互斥锁保护；广播由独立的串行化锁
// 保护，订阅/退订不会被阻塞中的广播卡住。所有操作对任意数量的
// 并发调用方安全。
package events

// Package events 实现节点生命周期事件通知
package events

import (
	"context"

	"go.uber.org/fx"
)

// ============================================================================
//                              Fx 模块
// ============================================================================

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	// Events 事件注册表
	Events *Events
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("events",
		fx.Provide(ProvideEvents),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideEvents 提供 Events 实例
func ProvideEvents() Result {
	return Result{
		Events: NewEvents(),
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC     fx.Lifecycle
	Events *Events
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Debug("事件注册表就绪", "events", len(input.Events.Names()))
			return nil
		},
		OnStop: func(_ context.Context) error {
			// 注册表与节点同生命周期，无需停止逻辑
			return nil
		},
	})
}

// ============================================================================
//                              模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "events"
	// Description 模块描述
	Description = "生命周期事件模块，提供类型化的事件广播与订阅"
)

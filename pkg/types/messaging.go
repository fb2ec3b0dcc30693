// Package types 定义 go-alexandria 的基础类型
//
// 本文件定义出站消息信封。
package types

// ============================================================================
//                              Message - 出站消息信封
// ============================================================================

// Message 出站消息信封
//
// 包装一种协议负载及其投递目标。消息发出后，发送路径以本信封
// 作为对应 sent-<Kind> 事件的负载广播给订阅者。
type Message[P Payload] struct {
	// Payload 协议负载
	Payload P

	// Node 远端节点 ID
	Node NodeID

	// Endpoint 远端端点
	Endpoint Endpoint
}

// Kind 返回所包装负载的消息种类
func (m Message[P]) Kind() MessageKind {
	return m.Payload.Kind()
}

// String 返回消息的简短字符串表示（用于日志）
func (m Message[P]) String() string {
	return m.Kind().String() + "->" + m.Node.ShortString()
}

// Package events 实现节点生命周期事件通知
package events

import (
	"github.com/alexandria-dht/go-alexandria/pkg/interfaces"
	"github.com/alexandria-dht/go-alexandria/pkg/types"
)

// ============================================================================
//                              Events 注册表
// ============================================================================

// Events 生命周期事件注册表
//
// 节点构造时创建一次，与节点同生命周期。各字段构造后不再替换，
// 生产者（握手驱动、消息发送路径、监听器）与订阅者通过同一实例
// 引用同一事件。事件集合与各自负载类型在编译期固定，不可配置。
type Events struct {
	// Listening 本地端点开始监听
	Listening *Event[types.Endpoint]

	// SessionCreated 新会话创建（入站或出站）
	SessionCreated *Event[interfaces.Session]

	// SessionIdle 会话空闲
	SessionIdle *Event[interfaces.Session]

	// HandshakeComplete 握手完成
	HandshakeComplete *Event[interfaces.Session]

	// HandshakeTimeout 握手超时
	HandshakeTimeout *Event[interfaces.Session]

	// Sent* 对应种类的消息发出后触发，负载为出站消息信封
	SentPing       *Event[types.Message[types.Ping]]
	SentPong       *Event[types.Message[types.Pong]]
	SentFindNodes  *Event[types.Message[types.FindNodes]]
	SentFoundNodes *Event[types.Message[types.FoundNodes]]
	SentAdvertise  *Event[types.Message[types.Advertise]]
	SentAck        *Event[types.Message[types.Ack]]
	SentLocate     *Event[types.Message[types.Locate]]
	SentLocations  *Event[types.Message[types.Locations]]
	SentRetrieve   *Event[types.Message[types.Retrieve]]
	SentChunk      *Event[types.Message[types.Chunk]]
}

// NewEvents 创建事件注册表
//
// 构造不会失败。注册表应作为显式依赖注入到需要发布或订阅的
// 组件中，而不是作为全局单例。
func NewEvents() *Events {
	return &Events{
		Listening: New[types.Endpoint]("listening"),

		SessionCreated: New[interfaces.Session]("session-created"),
		SessionIdle:    New[interfaces.Session]("session-idle"),

		HandshakeComplete: New[interfaces.Session]("handshake-complete"),
		HandshakeTimeout:  New[interfaces.Session]("handshake-timeout"),

		SentPing: New[types.Message[types.Ping]]("sent-Ping"),
		SentPong: New[types.Message[types.Pong]]("sent-Pong"),

		SentFindNodes:  New[types.Message[types.FindNodes]]("sent-FindNodes"),
		SentFoundNodes: New[types.Message[types.FoundNodes]]("sent-FoundNodes"),

		SentAdvertise: New[types.Message[types.Advertise]]("sent-Advertise"),
		SentAck:       New[types.Message[types.Ack]]("sent-Ack"),

		SentLocate:    New[types.Message[types.Locate]]("sent-Locate"),
		SentLocations: New[types.Message[types.Locations]]("sent-Locations"),

		SentRetrieve: New[types.Message[types.Retrieve]]("sent-Retrieve"),
		SentChunk:    New[types.Message[types.Chunk]]("sent-Chunk"),
	}
}

// Names 返回全部事件名称（用于诊断）
func (e *Events) Names() []string {
	return []string{
		e.Listening.Name(),
		e.SessionCreated.Name(),
		e.SessionIdle.Name(),
		e.HandshakeComplete.Name(),
		e.HandshakeTimeout.Name(),
		e.SentPing.Name(),
		e.SentPong.Name(),
		e.SentFindNodes.Name(),
		e.SentFoundNodes.Name(),
		e.SentAdvertise.Name(),
		e.SentAck.Name(),
		e.SentLocate.Name(),
		e.SentLocations.Name(),
		e.SentRetrieve.Name(),
		e.SentChunk.Name(),
	}
}

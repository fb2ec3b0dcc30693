// Package interfaces 定义 go-alexandria 公共接口
//
// 本文件定义 Session 接口。会话由握手层创建并维护，
// 事件层只将其作为不透明句柄广播给订阅者。
package interfaces

import "github.com/alexandria-dht/go-alexandria/pkg/types"

// Session 已建立的加密会话句柄
//
// 入站或出站连接尝试各产生一个会话，携带发起方标记。
type Session interface {
	// RemoteNodeID 返回远端节点 ID
	RemoteNodeID() types.NodeID

	// RemoteEndpoint 返回远端端点
	RemoteEndpoint() types.Endpoint

	// IsInitiator 返回本端是否为会话发起方
	IsInitiator() bool
}

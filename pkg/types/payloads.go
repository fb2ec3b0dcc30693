// Package types 定义 go-alexandria 的基础类型
//
// 本文件定义十种协议消息负载。负载在此仅作为不透明数据传递，
// 编解码与校验由协议层负责。
package types

// ============================================================================
//                              MessageKind - 消息种类
// ============================================================================

// MessageKind 协议消息种类
type MessageKind uint8

const (
	// KindUnknown 未知消息
	KindUnknown MessageKind = iota
	// KindPing 存活探测请求
	KindPing
	// KindPong 存活探测响应
	KindPong
	// KindFindNodes 节点发现请求
	KindFindNodes
	// KindFoundNodes 节点发现响应
	KindFoundNodes
	// KindAdvertise 内容通告请求
	KindAdvertise
	// KindAck 通告确认
	KindAck
	// KindLocate 内容定位请求
	KindLocate
	// KindLocations 内容定位响应
	KindLocations
	// KindRetrieve 分块获取请求
	KindRetrieve
	// KindChunk 数据分块响应
	KindChunk
)

// String 返回消息种类的字符串表示
func (k MessageKind) String() string {
	switch k {
	case KindPing:
		return "Ping"
	case KindPong:
		return "Pong"
	case KindFindNodes:
		return "FindNodes"
	case KindFoundNodes:
		return "FoundNodes"
	case KindAdvertise:
		return "Advertise"
	case KindAck:
		return "Ack"
	case KindLocate:
		return "Locate"
	case KindLocations:
		return "Locations"
	case KindRetrieve:
		return "Retrieve"
	case KindChunk:
		return "Chunk"
	default:
		return "Unknown"
	}
}

// ============================================================================
//                              Payload - 负载接口
// ============================================================================

// Payload 协议消息负载
//
// 十种负载类型均实现本接口，Kind 返回所属消息种类。
type Payload interface {
	Kind() MessageKind
}

// ============================================================================
//                              NodeRecord - 节点记录
// ============================================================================

// NodeRecord 响应中携带的节点记录（ID + 端点）
type NodeRecord struct {
	// ID 节点标识
	ID NodeID

	// Endpoint 节点端点
	Endpoint Endpoint
}

// ============================================================================
//                              负载定义
// ============================================================================

// Ping 存活探测请求
type Ping struct {
	// RequestID 请求 ID（用于关联响应）
	RequestID uint64
}

// Pong 存活探测响应
type Pong struct {
	RequestID uint64
}

// FindNodes 节点发现请求
type FindNodes struct {
	RequestID uint64

	// Distance 与本节点的目标距离（Kademlia 桶序号）
	Distance int
}

// FoundNodes 节点发现响应
type FoundNodes struct {
	RequestID uint64

	// Total 本次响应的分片总数
	Total uint8

	// Nodes 命中的节点记录
	Nodes []NodeRecord
}

// Advertise 内容通告请求
type Advertise struct {
	RequestID uint64

	// Key 被通告内容的键
	Key []byte

	// Node 持有该内容的节点
	Node NodeRecord
}

// Ack 通告确认
type Ack struct {
	RequestID uint64
}

// Locate 内容定位请求
type Locate struct {
	RequestID uint64

	// Key 被定位内容的键
	Key []byte
}

// Locations 内容定位响应
type Locations struct {
	RequestID uint64

	// Total 本次响应的分片总数
	Total uint8

	// Nodes 持有该内容的节点记录
	Nodes []NodeRecord
}

// Retrieve 分块获取请求
type Retrieve struct {
	RequestID uint64

	// Key 被获取内容的键
	Key []byte
}

// Chunk 数据分块响应
type Chunk struct {
	RequestID uint64

	// Total 分块总数
	Total uint16

	// Index 本块序号（从 0 开始）
	Index uint16

	// Data 分块数据
	Data []byte
}

// Kind 返回消息种类
func (Ping) Kind() MessageKind { return KindPing }

// Kind 返回消息种类
func (Pong) Kind() MessageKind { return KindPong }

// Kind 返回消息种类
func (FindNodes) Kind() MessageKind { return KindFindNodes }

// Kind 返回消息种类
func (FoundNodes) Kind() MessageKind { return KindFoundNodes }

// Kind 返回消息种类
func (Advertise) Kind() MessageKind { return KindAdvertise }

// Kind 返回消息种类
func (Ack) Kind() MessageKind { return KindAck }

// Kind 返回消息种类
func (Locate) Kind() MessageKind { return KindLocate }

// Kind 返回消息种类
func (Locations) Kind() MessageKind { return KindLocations }

// Kind 返回消息种类
func (Retrieve) Kind() MessageKind { return KindRetrieve }

// Kind 返回消息种类
func (Chunk) Kind() MessageKind { return KindChunk }

// Package events 实现节点生命周期事件通知
package events

// DefaultQueueSize 订阅队列默认容量
const DefaultQueueSize = 256

// subscriptionSettings 订阅设置
type subscriptionSettings struct {
	Buffer int
}

// SubscriptionOpt 订阅选项函数类型
type SubscriptionOpt func(*subscriptionSettings)

// BufSize 设置订阅队列容量
func BufSize(size int) SubscriptionOpt {
	return func(s *subscriptionSettings) {
		s.Buffer = size
	}
}

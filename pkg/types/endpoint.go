// Package types 定义 go-alexandria 的基础类型
//
// 本文件定义网络端点类型。
package types

import "net/netip"

// ============================================================================
//                              Endpoint - 网络端点
// ============================================================================

// Endpoint 节点的网络端点（IP + UDP 端口）
type Endpoint struct {
	// IP 地址
	IP netip.Addr

	// Port UDP 端口
	Port uint16
}

// String 返回 "ip:port" 形式的字符串表示
func (e Endpoint) String() string {
	return netip.AddrPortFrom(e.IP, e.Port).String()
}

// IsValid 检查端点是否有效
func (e Endpoint) IsValid() bool {
	return e.IP.IsValid() && e.Port != 0
}

// AddrPort 返回标准库 netip.AddrPort 表示
func (e Endpoint) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(e.IP, e.Port)
}

// EndpointFromAddrPort 从 netip.AddrPort 创建端点
func EndpointFromAddrPort(ap netip.AddrPort) Endpoint {
	return Endpoint{IP: ap.Addr(), Port: ap.Port()}
}

// ParseEndpoint 从 "ip:port" 字符串解析端点
func ParseEndpoint(s string) (Endpoint, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return Endpoint{}, err
	}
	return EndpointFromAddrPort(ap), nil
}

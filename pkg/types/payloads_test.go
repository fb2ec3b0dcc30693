package types

import "testing"

// ============================================================================
// MessageKind 测试
// ============================================================================

// TestMessageKind_String 测试消息种类字符串表示
func TestMessageKind_String(t *testing.T) {
	cases := []struct {
		kind MessageKind
		want string
	}{
		{KindPing, "Ping"},
		{KindPong, "Pong"},
		{KindFindNodes, "FindNodes"},
		{KindFoundNodes, "FoundNodes"},
		{KindAdvertise, "Advertise"},
		{KindAck, "Ack"},
		{KindLocate, "Locate"},
		{KindLocations, "Locations"},
		{KindRetrieve, "Retrieve"},
		{KindChunk, "Chunk"},
		{KindUnknown, "Unknown"},
		{MessageKind(99), "Unknown"},
	}

	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("MessageKind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

// TestPayload_Kind 测试负载到种类的映射
func TestPayload_Kind(t *testing.T) {
	cases := []struct {
		payload Payload
		want    MessageKind
	}{
		{Ping{}, KindPing},
		{Pong{}, KindPong},
		{FindNodes{}, KindFindNodes},
		{FoundNodes{}, KindFoundNodes},
		{Advertise{}, KindAdvertise},
		{Ack{}, KindAck},
		{Locate{}, KindLocate},
		{Locations{}, KindLocations},
		{Retrieve{}, KindRetrieve},
		{Chunk{}, KindChunk},
	}

	for _, c := range cases {
		if got := c.payload.Kind(); got != c.want {
			t.Errorf("%T.Kind() = %v, want %v", c.payload, got, c.want)
		}
	}
}

// ============================================================================
// Message 信封测试
// ============================================================================

// TestMessage_Kind 测试信封透传负载种类
func TestMessage_Kind(t *testing.T) {
	m := Message[FindNodes]{
		Payload: FindNodes{RequestID: 9, Distance: 3},
		Node:    GenerateNodeID(),
	}

	if m.Kind() != KindFindNodes {
		t.Errorf("Kind() = %v, want KindFindNodes", m.Kind())
	}
}

// TestMessage_String 测试信封日志表示
func TestMessage_String(t *testing.T) {
	id := GenerateNodeID()
	m := Message[Ping]{
		Payload: Ping{RequestID: 1},
		Node:    id,
	}

	want := "Ping->" + id.ShortString()
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

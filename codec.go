package vectree

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	defaultMarshal   = json.Marshal
	defaultUnmarshal = json.Unmarshal
)

// MarshalTree encodes the tree as a varint node count followed by one
// (drift varint, length-delimited data) record per node, in sequence
// order. Data bytes are produced by the given marshal function, or
// encoding/json when nil.
func MarshalTree[V any](t *Tree[V], marshal func(interface{}) ([]byte, error)) ([]byte, error) {
	if marshal == nil {
		marshal = defaultMarshal
	}
	buf := protowire.AppendVarint(nil, uint64(len(t.nodes)))
	for i, n := range t.nodes {
		buf = protowire.AppendVarint(buf, uint64(n.Drift))
		body, err := marshal(n.Data)
		if err != nil {
			return nil, fmt.Errorf("marshal node %d: %w", i, err)
		}
		buf = protowire.AppendBytes(buf, body)
	}
	return buf, nil
}

// UnmarshalTree decodes a tree produced by MarshalTree, validating the
// drift invariants before returning it. Data bytes are decoded by the
// given unmarshal function, or encoding/json when nil.
func UnmarshalTree[V any](buf []byte, unmarshal func([]byte, interface{}) error) (*Tree[V], error) {
	if unmarshal == nil {
		unmarshal = defaultUnmarshal
	}
	count, n := protowire.ConsumeVarint(buf)
	if n < 0 {
		return nil, fmt.Errorf("node count: %w", protowire.ParseError(n))
	}
	buf = buf[n:]
	// every node takes at least two bytes
	if count > uint64(len(buf))/2 {
		return nil, fmt.Errorf("node count %d exceeds remaining input", count)
	}
	nodes := make([]Node[V], 0, count)
	for i := uint64(0); i < count; i++ {
		drift, n := protowire.ConsumeVarint(buf)
		if n < 0 {
			return nil, fmt.Errorf("node %d drift: %w", i, protowire.ParseError(n))
		}
		buf = buf[n:]
		body, n := protowire.ConsumeBytes(buf)
		if n < 0 {
			return nil, fmt.Errorf("node %d data: %w", i, protowire.ParseError(n))
		}
		buf = buf[n:]
		var data V
		if err := unmarshal(body, &data); err != nil {
			return nil, fmt.Errorf("unmarshal node %d: %w", i, err)
		}
		nodes = append(nodes, Node[V]{Drift: uint(drift), Data: data})
	}
	if len(buf) != 0 {
		return nil, errors.New("trailing bytes after last node")
	}
	return FromNodes(nodes)
}

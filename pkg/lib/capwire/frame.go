package capwire

import (
	"bufio"
	"fmt"
	"io"

	"github.com/multiformats/go-varint"

	"github.com/dep2p/go-ethcap/pkg/types"
)

// MaxMessageSize 长度前缀消息的最大长度
const MaxMessageSize = 64 * 1024

// ============================================================================
//                              能力消息帧
// ============================================================================

// EncodeRawMessage 编码能力消息帧：[uvarint id][payload]
func EncodeRawMessage(msg *types.RawCapabilityMessage) ([]byte, error) {
	if msg.ID > varint.MaxValueUvarint63 {
		return nil, fmt.Errorf("%w: message id %d exceeds varint range", ErrMalformed, msg.ID)
	}

	buf := make([]byte, 0, varint.UvarintSize(msg.ID)+len(msg.Payload))
	buf = append(buf, varint.ToUvarint(msg.ID)...)
	buf = append(buf, msg.Payload...)
	return buf, nil
}

// DecodeRawMessage 解码能力消息帧
//
// 返回的负载是 frame 的副本。
func DecodeRawMessage(frame []byte) (*types.RawCapabilityMessage, error) {
	id, n, err := varint.FromUvarint(frame)
	if err != nil {
		return nil, fmt.Errorf("%w: message id: %v", ErrMalformed, err)
	}

	payload := make([]byte, len(frame)-n)
	copy(payload, frame[n:])

	return &types.RawCapabilityMessage{ID: id, Payload: payload}, nil
}

// ============================================================================
//                              长度前缀流
// ============================================================================

// WriteCapabilities 以 [uvarint length][body] 格式写入能力列表
func WriteCapabilities(w io.Writer, caps *types.Capabilities) error {
	body := EncodeCapabilities(caps)
	if len(body) > MaxMessageSize {
		return ErrMessageTooLarge
	}

	buf := make([]byte, 0, varint.UvarintSize(uint64(len(body)))+len(body))
	buf = append(buf, varint.ToUvarint(uint64(len(body)))...)
	buf = append(buf, body...)

	_, err := w.Write(buf)
	return err
}

// ReadCapabilities 读取 WriteCapabilities 写入的能力列表
func ReadCapabilities(r *bufio.Reader) (*types.Capabilities, error) {
	length, err := varint.ReadUvarint(r)
	if err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, fmt.Errorf("%w: length prefix: %v", ErrMalformed, err)
	}

	if length > MaxMessageSize {
		return nil, ErrMessageTooLarge
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}

	return DecodeCapabilities(body)
}

package envelope

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// ErrTruncated indicates a binary buffer ended before a length-prefixed
// field could be fully read. ParseContent also returns it for an unknown
// field tag.
var ErrTruncated = errors.New("envelope: truncated buffer")

func putString(buf *bytes.Buffer, s string) {
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(s)))
	buf.Write(l[:])
	buf.WriteString(s)
}

func putBytes(buf *bytes.Buffer, b []byte) {
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(b)))
	buf.Write(l[:])
	buf.Write(b)
}

func readLenPrefixed(data []byte, offset int) ([]byte, int, error) {
	if offset+4 > len(data) {
		return nil, 0, ErrTruncated
	}
	l := int(binary.BigEndian.Uint32(data[offset : offset+4]))
	offset += 4
	if offset+l > len(data) {
		return nil, 0, ErrTruncated
	}
	return data[offset : offset+l], offset + l, nil
}

// Marshal serializes an Envelope to its length-prefixed binary wire form:
// 1 byte wire type, 8 bytes big-endian timestamp, length-prefixed source,
// length-prefixed content, per spec §4.E.
func (e Envelope) Marshal() []byte {
	var buf bytes.Buffer

	buf.WriteByte(byte(e.Type.WireValue()))

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], e.Timestamp)
	buf.Write(ts[:])

	putString(&buf, e.Source)
	putBytes(&buf, e.Content)

	return buf.Bytes()
}

// Parse decodes an Envelope from its binary wire form. The wire type
// integer is preserved in the returned Envelope's Type by best-effort
// mapping (TypeFromWireValue); ambiguous wire values (6, 7) decode to their
// more common meaning (SESSION_MESSAGE, CLOSED_GROUP_MESSAGE) and callers
// that need the namespace-qualified meaning should consult the retrieval
// namespace directly, as the poller does.
func Parse(data []byte) (Envelope, error) {
	if len(data) < 1+8 {
		return Envelope{}, ErrTruncated
	}

	wireType := int(data[0])
	offset := 1

	timestamp := binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8

	source, offset, err := readLenPrefixed(data, offset)
	if err != nil {
		return Envelope{}, err
	}

	content, _, err := readLenPrefixed(data, offset)
	if err != nil {
		return Envelope{}, err
	}

	t, _ := TypeFromWireValue(wireType)

	return Envelope{
		Type:      t,
		Source:    string(source),
		Timestamp: timestamp,
		Content:   append([]byte(nil), content...),
	}, nil
}

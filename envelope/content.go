package envelope

import (
	"bytes"
	"encoding/binary"
)

// content field tags, written as a single byte ahead of each optional
// sub-message so Parse can tell which ones are present without a schema.
const (
	tagDataMessage byte = 1
	tagTyping      byte = 2
	tagReceipt     byte = 3
)

func putUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func readUint32(data []byte, offset int) (uint32, int, error) {
	if offset+4 > len(data) {
		return 0, 0, ErrTruncated
	}
	return binary.BigEndian.Uint32(data[offset : offset+4]), offset + 4, nil
}

func readUint64(data []byte, offset int) (uint64, int, error) {
	if offset+8 > len(data) {
		return 0, 0, ErrTruncated
	}
	return binary.BigEndian.Uint64(data[offset : offset+8]), offset + 8, nil
}

func marshalAttachmentPointer(buf *bytes.Buffer, a AttachmentPointer) {
	putString(buf, a.ID)
	putUint64(buf, a.Size)
	buf.Write(a.Key[:])
	buf.Write(a.IV[:])
	putString(buf, a.URL)
	putString(buf, a.Digest)
	putString(buf, a.FileName)
	putString(buf, a.MimeType)
	putUint32(buf, a.Width)
	putUint32(buf, a.Height)
	putString(buf, a.Caption)
}

func unmarshalAttachmentPointer(data []byte, offset int) (AttachmentPointer, int, error) {
	var a AttachmentPointer
	var raw []byte
	var err error

	if raw, offset, err = readLenPrefixed(data, offset); err != nil {
		return a, 0, err
	}
	a.ID = string(raw)

	if a.Size, offset, err = readUint64(data, offset); err != nil {
		return a, 0, err
	}

	if offset+64 > len(data) {
		return a, 0, ErrTruncated
	}
	copy(a.Key[:], data[offset:offset+64])
	offset += 64

	if offset+16 > len(data) {
		return a, 0, ErrTruncated
	}
	copy(a.IV[:], data[offset:offset+16])
	offset += 16

	if raw, offset, err = readLenPrefixed(data, offset); err != nil {
		return a, 0, err
	}
	a.URL = string(raw)

	if raw, offset, err = readLenPrefixed(data, offset); err != nil {
		return a, 0, err
	}
	a.Digest = string(raw)

	if raw, offset, err = readLenPrefixed(data, offset); err != nil {
		return a, 0, err
	}
	a.FileName = string(raw)

	if raw, offset, err = readLenPrefixed(data, offset); err != nil {
		return a, 0, err
	}
	a.MimeType = string(raw)

	if a.Width, offset, err = readUint32(data, offset); err != nil {
		return a, 0, err
	}
	if a.Height, offset, err = readUint32(data, offset); err != nil {
		return a, 0, err
	}

	if raw, offset, err = readLenPrefixed(data, offset); err != nil {
		return a, 0, err
	}
	a.Caption = string(raw)

	return a, offset, nil
}

func marshalDataMessage(m DataMessage) []byte {
	var buf bytes.Buffer
	putString(&buf, m.Body)
	putUint64(&buf, m.Timestamp)
	putUint32(&buf, uint32(len(m.Attachments)))
	for _, a := range m.Attachments {
		marshalAttachmentPointer(&buf, a)
	}
	putString(&buf, m.AuthorSessionID)
	return buf.Bytes()
}

func unmarshalDataMessage(data []byte) (DataMessage, error) {
	var m DataMessage
	var raw []byte
	var err error
	offset := 0

	if raw, offset, err = readLenPrefixed(data, offset); err != nil {
		return m, err
	}
	m.Body = string(raw)

	if m.Timestamp, offset, err = readUint64(data, offset); err != nil {
		return m, err
	}

	var count uint32
	if count, offset, err = readUint32(data, offset); err != nil {
		return m, err
	}

	m.Attachments = make([]AttachmentPointer, 0, count)
	for i := uint32(0); i < count; i++ {
		var a AttachmentPointer
		if a, offset, err = unmarshalAttachmentPointer(data, offset); err != nil {
			return m, err
		}
		m.Attachments = append(m.Attachments, a)
	}

	if raw, _, err = readLenPrefixed(data, offset); err != nil {
		return m, err
	}
	m.AuthorSessionID = string(raw)

	return m, nil
}

// Marshal serializes Content to its length-prefixed binary form. Each
// present optional field is written as a one-byte tag followed by its
// length-prefixed encoding, except the typing indicator, whose tag is
// followed by its single action byte; absent fields are omitted entirely.
func (c Content) Marshal() []byte {
	var buf bytes.Buffer

	if c.DataMessage != nil {
		buf.WriteByte(tagDataMessage)
		putBytes(&buf, marshalDataMessage(*c.DataMessage))
	}
	if c.Typing != nil {
		buf.WriteByte(tagTyping)
		buf.WriteByte(c.Typing.Action)
	}
	if c.Receipt != nil {
		buf.WriteByte(tagReceipt)
		var rbuf bytes.Buffer
		putUint32(&rbuf, uint32(len(c.Receipt.Timestamps)))
		for _, ts := range c.Receipt.Timestamps {
			putUint64(&rbuf, ts)
		}
		putBytes(&buf, rbuf.Bytes())
	}

	return buf.Bytes()
}

// ParseContent decodes a Content from its binary form produced by Marshal.
func ParseContent(data []byte) (Content, error) {
	var c Content
	offset := 0

	for offset < len(data) {
		if offset+1 > len(data) {
			return Content{}, ErrTruncated
		}
		tag := data[offset]
		offset++

		switch tag {
		case tagDataMessage:
			raw, next, err := readLenPrefixed(data, offset)
			if err != nil {
				return Content{}, err
			}
			offset = next
			dm, err := unmarshalDataMessage(raw)
			if err != nil {
				return Content{}, err
			}
			c.DataMessage = &dm

		case tagTyping:
			if offset+1 > len(data) {
				return Content{}, ErrTruncated
			}
			c.Typing = &TypingIndicator{Action: data[offset]}
			offset++

		case tagReceipt:
			raw, next, err := readLenPrefixed(data, offset)
			if err != nil {
				return Content{}, err
			}
			offset = next

			count, roff, err := readUint32(raw, 0)
			if err != nil {
				return Content{}, err
			}
			receipt := ReadReceipt{Timestamps: make([]uint64, 0, count)}
			for i := uint32(0); i < count; i++ {
				var ts uint64
				ts, roff, err = readUint64(raw, roff)
				if err != nil {
					return Content{}, err
				}
				receipt.Timestamps = append(receipt.Timestamps, ts)
			}
			c.Receipt = &receipt

		default:
			return Content{}, ErrTruncated
		}
	}

	return c, nil
}

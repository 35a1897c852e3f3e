package codec

import (
	"encoding/binary"
	"unsafe"
)

// Encoder appends wire-format values to an internal buffer.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// WriteU8 appends a single byte.
func (e *Encoder) WriteU8(v uint8) {
	e.buf = append(e.buf, v)
}

// WriteBool appends a single byte, 1 for true and 0 for false.
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.WriteU8(1)
	} else {
		e.WriteU8(0)
	}
}

// WriteU16 appends a little-endian uint16.
func (e *Encoder) WriteU16(v uint16) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

// WriteU32 appends a little-endian uint32.
func (e *Encoder) WriteU32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

// WriteU64 appends a little-endian uint64.
func (e *Encoder) WriteU64(v uint64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}

// WriteBytes appends p as a u16 length prefix followed by its bytes.
func (e *Encoder) WriteBytes(p []byte) {
	e.WriteU16(uint16(len(p)))
	e.buf = append(e.buf, p...)
}

// WriteString appends s as a u16 length prefix followed by its bytes.
func (e *Encoder) WriteString(s string) {
	e.WriteBytes([]byte(s))
}

// Decoder reads wire-format values sequentially from a borrowed
// buffer. Decoded strings and byte slices alias the buffer rather
// than copying it.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps buf for sequential reads.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Remaining reports how many unread bytes are left.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// read returns the next n bytes of the buffer without copying,
// advancing the read position.
func (d *Decoder) read(n int) ([]byte, error) {
	if d.Remaining() < n {
		return nil, ErrInsufficientData
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// ReadU8 reads a single byte.
func (d *Decoder) ReadU8() (uint8, error) {
	b, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads a single byte as a bool.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadU8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadU16 reads a little-endian uint16.
func (d *Decoder) ReadU16() (uint16, error) {
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (d *Decoder) ReadU32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads a little-endian uint64.
func (d *Decoder) ReadU64() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadBytes reads a u16 length prefix followed by that many bytes,
// returned as a slice aliasing the decoder's backing buffer.
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	return d.read(int(n))
}

// ReadString reads a length-prefixed string. The returned string shares
// memory with the decoder's backing buffer; later writes to that buffer
// change it.
func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}
	return unsafe.String(&b[0], len(b)), nil
}

// ReadID reads a u32 ID. An ID of 0 is reserved and reported as
// ErrInvalidData.
func (d *Decoder) ReadID() (uint32, error) {
	v, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, ErrInvalidData
	}
	return v, nil
}

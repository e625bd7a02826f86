package lbytes

func NewBytesWriter() *Writer {
	return &Writer{}
}

// Position returns the number of bits written so far.
func (w *Writer) Position() int {
	return w.buffer.Len() * 8
}

func (w *Writer) Bytes() []byte {
	return w.buffer.Bytes()
}

func (w *Writer) WriteBytes(bs []byte) error {
	_, err := w.buffer.Write(bs)
	return err
}

func (w *Writer) WriteByte(b byte) error {
	return w.buffer.WriteByte(b)
}

func (w *Writer) WriteUInt16(value uint16) error {
	return w.WriteBytes(EncodeUInt16(value))
}

func (w *Writer) WriteUInt32(value uint32) error {
	return w.WriteBytes(EncodeUInt32(value))
}

func (w *Writer) WriteString(s string, n int) error {
	return w.WriteBytes(EncodeFixedString(s, n))
}

package archive

// NoOpCodec bypasses compression entirely. Useful for small messages
// where compression overhead would outweigh the benefit, or for
// debugging archive framing without the compression step in the way.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

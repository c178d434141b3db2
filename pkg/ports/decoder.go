package ports

// DepthFrame is the decoded scalar plane of a single image file.
// Samples are row-major, one float32 per pixel, len == Width*Height.
type DepthFrame struct {
	Path    string
	Width   int
	Height  int
	Samples []float32
}

// DepthDecoder abstracts reading one named channel from an image file.
type DepthDecoder interface {
	// DecodeChannel reads the named channel of the file at path as
	// float32 samples. Returns an error if the file cannot be parsed
	// or does not carry the channel.
	DecodeChannel(path, channel string) (*DepthFrame, error)
}

package model

// Upload is a file received in a multipart request, read into memory.
type Upload struct {
	Filename string
	Data     []byte
}

package reflectx

// BytesDecoder is implemented by argument types that decode themselves from
// their encoded form. ParseValue prefers it over every other decoding.
type BytesDecoder interface {
	DecodeFromBytes([]byte) error
}

package codec

import (
	"fmt"
	"sync"
)

// Registry holds the registered encoders and decoders.
type Registry struct {
	mu       sync.RWMutex
	encoders map[Type]Encoder
	decoders map[Type]Decoder
}

var registry = &Registry{
	encoders: make(map[Type]Encoder),
	decoders: make(map[Type]Decoder),
}

// RegisterEncoder registers an encoder for the given type, replacing any
// encoder already registered for it.
func RegisterEncoder(name Type, encoder Encoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.encoders[name] = encoder
}

// RegisterDecoder registers a decoder for the given type, replacing any
// decoder already registered for it.
func RegisterDecoder(name Type, decoder Decoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.decoders[name] = decoder
}

// GetEncoder retrieves the registered encoder for the given type. If no encoder
// is registered for the given type, an error is returned.
func GetEncoder(name Type) (Encoder, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	encoder, exists := registry.encoders[name]
	if !exists {
		return nil, fmt.Errorf("encoder not found for type: %s", name)
	}
	return encoder, nil
}

// GetDecoder retrieves the registered decoder for the given type. If no decoder
// is registered for the given type, an error is returned.
func GetDecoder(name Type) (Decoder, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	decoder, exists := registry.decoders[name]
	if !exists {
		return nil, fmt.Errorf("decoder not found for type: %s", name)
	}
	return decoder, nil
}

// Convert decodes data as type from and re-encodes the tree as type to.
func Convert(data []byte, from, to Type) ([]byte, error) {
	dec, err := GetDecoder(from)
	if err != nil {
		return nil, err
	}
	enc, err := GetEncoder(to)
	if err != nil {
		return nil, err
	}
	sec, err := dec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", from, err)
	}
	out, err := enc.Encode(sec)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", to, err)
	}
	return out, nil
}

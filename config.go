package chunkvec

import "fmt"

// Option configures a vector at construction time.
type Option func(*config)

// WithChunkCapacity sets the number of elements per chunk.
//
// Only vectors with Dynamic capacity accept this option; a capacity less than
// 1 is a configuration error.
func WithChunkCapacity(n int) Option {
	return func(cfg *config) {
		cfg.chunkCapacity = n
		cfg.capacitySet = true
	}
}

// WithChunks preallocates n empty chunks.
func WithChunks(n int) Option {
	return func(cfg *config) {
		cfg.chunks = n
	}
}

// WithCapacity preallocates enough empty chunks to hold n elements.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

type config struct {
	chunkCapacity int
	capacitySet   bool
	chunks        int // chunks to preallocate
	capacity      int // elements to preallocate for
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg config) normalized() config {
	if !cfg.capacitySet {
		cfg.chunkCapacity = DefaultChunkCapacity
	}
	cfg.chunks = max(cfg.chunks, chunksFor(cfg.capacity, cfg.chunkCapacity))
	return cfg
}

func (cfg config) validate() error {
	if cfg.capacitySet && cfg.chunkCapacity < 1 {
		return fmt.Errorf("%w: chunk capacity must be at least 1, is %d", ErrInvalidConfig, cfg.chunkCapacity)
	}
	if cfg.chunks < 0 {
		return fmt.Errorf("%w: negative chunk count %d", ErrInvalidConfig, cfg.chunks)
	}
	if cfg.capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, cfg.capacity)
	}
	return nil
}

// validateStatic checks a configuration for a vector with compile-time chunk
// capacity n.
func (cfg config) validateStatic(n int) error {
	if cfg.capacitySet {
		return fmt.Errorf("%w: chunk capacity is fixed at compile time", ErrInvalidConfig)
	}
	if n < 1 {
		return fmt.Errorf("%w: chunk capacity must be at least 1, is %d", ErrInvalidConfig, n)
	}
	return cfg.validate()
}

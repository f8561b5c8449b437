package frontier

import "github.com/zommiommy/parallel-frontier/pkg/pool"

// Config holds construction parameters for a Frontier.
type Config struct {
	Shards   int
	Capacity int
}

// Option is a functional option for configuring a Frontier.
type Option func(*Config)

// DefaultConfig returns the default configuration: one shard per logical CPU,
// no pre-allocation.
func DefaultConfig() Config {
	return Config{
		Shards:   sanitizeShards(0),
		Capacity: 0,
	}
}

// WithShards fixes the number of shards. The count must match the indexing
// contract of whatever scheduler will push into the frontier; prefer WithPool
// when a pool is at hand.
func WithShards(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Shards = n
		}
	}
}

// WithPool sets the shard count to the pool's declared parallelism, so every
// worker index the pool hands out has a shard of its own.
func WithPool(p *pool.Pool) Option {
	return func(c *Config) {
		c.Shards = p.Workers()
	}
}

// WithCapacity pre-allocates the given overall element capacity, distributed
// evenly across the shards. Rounds that reach a similar size each time can use
// this to avoid regrowing shards from zero after every Clear.
func WithCapacity(total int) Option {
	return func(c *Config) {
		if total > 0 {
			c.Capacity = total
		}
	}
}

// ApplyOptions applies the given options to the default configuration.
func ApplyOptions(opts ...Option) Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

package xcache

import "time"

// Mode represents the cache backend mode
//   - memory: pure in-memory
//   - redis: pure redis
//   - two-level: memory + redis chain
const (
	ModeMemory   = "memory"
	ModeRedis    = "redis"
	ModeTwoLevel = "two-level"
)

type Config struct {
	Mode   string
	Memory MemoryConfig
	Redis  RedisConfig
}

type MemoryConfig struct {
	Expiration      time.Duration
	CleanupInterval time.Duration
}

// RedisConfig accepts either a redis:// (rediss://) URL or a plain host:port address.
type RedisConfig struct {
	URL                   string
	Addr                  string
	Username              string
	Password              string
	DB                    int
	TLS                   bool
	TLSInsecureSkipVerify bool
	Expiration            time.Duration
}

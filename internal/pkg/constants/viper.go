package constants

import (
	"time"

	"github.com/spf13/viper"
)

const (
	ViperHTTPAddrKey         = "http.addr"
	ViperHTTPAllowOriginsKey = "http.allow_origins"

	ViperPostgresDSNKey      = "postgres.dsn"
	ViperPostgresMaxConnsKey = "postgres.max_conns"

	ViperRedisAddrKey     = "redis.addr"
	ViperRedisPasswordKey = "redis.password"
	ViperRedisDBKey       = "redis.db"

	ViperCacheBusinessKey = "cache.business_key"
	ViperCacheFinanceKey  = "cache.finance_key"
	ViperCacheLetterKey   = "cache.letter_key"
	ViperCacheResidentKey = "cache.resident_key"
	ViperCacheUserKey     = "cache.user_key"

	ViperSecretKey     = "auth.secret"
	ViperTokenTTLKey   = "auth.token_ttl"
	ViperRegionsKey    = "regions.allowed"
	ViperLogModeKey    = "log.mode"
	ViperLogLevelKey   = "log.level"
	ViperEnvPrefix     = "RTRW"
	DefaultBusinessKey = "umkm"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault(ViperHTTPAddrKey, ":8080")
	v.SetDefault(ViperHTTPAllowOriginsKey, []string{"http://localhost:3000"})
	v.SetDefault(ViperPostgresMaxConnsKey, 10)
	v.SetDefault(ViperRedisDBKey, 0)
	v.SetDefault(ViperCacheBusinessKey, DefaultBusinessKey)
	v.SetDefault(ViperCacheFinanceKey, "keuangan")
	v.SetDefault(ViperCacheLetterKey, "surat")
	v.SetDefault(ViperCacheResidentKey, "warga")
	v.SetDefault(ViperCacheUserKey, "registered_users")
	v.SetDefault(ViperTokenTTLKey, 24*time.Hour)
	v.SetDefault(ViperRegionsKey, []string{"01", "04"})
	v.SetDefault(ViperLogModeKey, "development")
	v.SetDefault(ViperLogLevelKey, "info")
}

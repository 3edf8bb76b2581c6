package metrics

const Namespace = "founderdeck"

const (
	CacheTypeRedis  = "redis"
	CacheTypeMemory = "memory"
)

const (
	CacheOperationTypeGet    = "get"
	CacheOperationTypeSet    = "set"
	CacheOperationTypeDelete = "delete"
)

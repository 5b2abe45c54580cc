package redis_ser

const (
	Prefix           = "bluelog:"
	SessionBlacklist = "session_blacklist:"
)

func GetRedisKey(key string) string {
	return Prefix + key
}

package env

import "os"

// Secrets are read from the environment so they stay out of etc/*.yaml.
var (
	RedisPassWord = os.Getenv("BLOKUS_REDIS_PASSWORD")
	MongoPassWord = os.Getenv("BLOKUS_MONGO_PASSWORD")
)

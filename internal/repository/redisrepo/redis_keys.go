package redisrepo

import "fmt"

const (
	USER_CACHE_KEY = "user-cache:%s" // <userID>
)

func UserCacheKey(userID string) string {
	return fmt.Sprintf(USER_CACHE_KEY, userID)
}

package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AttendanceStatsKey returns the cache key for the dashboard attendance stats.
func (r *CacheKeyStruct) AttendanceStatsKey(day string) string {
	return fmt.Sprintf("attendance:stats:%s", day)
}

var CacheKey = NewCacheKeyStruct()

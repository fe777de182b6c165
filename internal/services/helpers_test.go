package services

import (
	"strconv"
	"time"

	"fintrack/internal/logger"
	"fintrack/internal/store/memory"
)

func initTestLogger() {
	logger.Init("test", "")
}

func memoryStore() *memory.Store {
	return memory.New()
}

func fixedClock(day string) func() time.Time {
	return func() time.Time {
		t, err := time.Parse("2006-01-02 15:04", day+" 23:30")
		if err != nil {
			panic(err)
		}
		return t
	}
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

package repository

import (
	"encoding/json"
	"time"

	"github.com/dormkeep/registry-service/internal/domain"
	"github.com/dormkeep/registry-service/internal/jsonstore"
)

// Raw records come back with float64 numbers after a JSON round trip and
// with whatever Go type a test seeded. Normalize on read.
func recordInt64(rec jsonstore.Record, key string) int64 {
	switch v := rec[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

func recordString(rec jsonstore.Record, key string) string {
	if s, ok := rec[key].(string); ok {
		return s
	}
	return ""
}

// nextID assigns 1 + the highest id present in the document or previously
// assigned, whichever is larger. The persisted document carries no counter,
// so the repository passes its own high-water mark as last; that keeps ids
// monotonic even after the record holding the max is deleted.
func nextID(records []jsonstore.Record, last int64) int64 {
	max := last
	for _, rec := range records {
		if id := recordInt64(rec, "id"); id > max {
			max = id
		}
	}
	return max + 1
}

func roomFromRecord(rec jsonstore.Record) domain.Room {
	return domain.Room{
		ID:   recordInt64(rec, "id"),
		Name: recordString(rec, "name"),
	}
}

func studentFromRecord(rec jsonstore.Record) domain.Student {
	st := domain.Student{
		ID:   recordInt64(rec, "id"),
		Name: recordString(rec, "name"),
		Room: recordInt64(rec, "room"),
		Sex:  recordString(rec, "sex"),
	}
	if raw := recordString(rec, "birthday"); raw != "" {
		if ts, err := time.Parse(domain.BirthdayLayout, raw); err == nil {
			st.Birthday = ts
		}
	}
	return st
}

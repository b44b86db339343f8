package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	rdb *redis.Client
	ctx context.Context
)

const (
	strikeLimit  = 5
	strikeWindow = time.Minute
	banDuration  = 15 * time.Minute

	DailyBanLogKey = "ratelimit:banlog:daily"
)

// SetRedis wires the redis client used for strike counting and the ban
// list. When never called, the package stays disabled and every check is
// a no-op.
func SetRedis(client *redis.Client, c context.Context) {
	rdb = client
	ctx = c
}

func Enabled() bool {
	return rdb != nil
}

// IsBanned reports whether the client currently holds an active ban.
func IsBanned(ip string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, banKey(ip)).Result()
	if err != nil {
		log.Printf("ban lookup failed for %s: %v", ip, err)
		return false
	}
	return n > 0
}

// RegisterStrike records a rate-limit violation. Once the client crosses
// the strike limit inside the window it is banned for banDuration; the
// return value reports whether this strike triggered the ban.
func RegisterStrike(ip, route string) bool {
	if rdb == nil {
		return false
	}

	strikes, err := rdb.Incr(ctx, strikeKey(ip)).Result()
	if err != nil {
		log.Printf("strike count failed for %s: %v", ip, err)
		return false
	}
	rdb.Expire(ctx, strikeKey(ip), strikeWindow)

	if strikes < strikeLimit {
		return false
	}

	if err := rdb.Set(ctx, banKey(ip), time.Now().Format(time.RFC3339), banDuration).Err(); err != nil {
		log.Printf("failed to ban %s: %v", ip, err)
		return false
	}
	logBanEvent(ip, route, int(strikes))
	return true
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

func logBanEvent(target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    time.Now(),
	}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, DailyBanLogKey, data).Err()
}

func strikeKey(ip string) string {
	return fmt.Sprintf("ratelimit:strikes:%s", ip)
}

func banKey(ip string) string {
	return fmt.Sprintf("ratelimit:ban:%s", ip)
}

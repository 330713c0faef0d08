package lobby

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	rdb *redis.Client
}

// NewRedisRepo backs the lobby with Redis so several service nodes share
// one matchmaking pool.
//
// Key layout:
//
//	set lobby:pool:{stakes}:{size}  -> player ids
//	kv  lobby:player:{id}           -> "stakes:size", with TTL
func NewRedisRepo(rdb *redis.Client) Repo {
	return &redisRepo{rdb: rdb}
}

func poolKey(stakes string, tableSize int) string {
	return fmt.Sprintf("lobby:pool:%s:%d", stakes, tableSize)
}

func playerKey(playerID int64) string {
	return fmt.Sprintf("lobby:player:%d", playerID)
}

func (r *redisRepo) Enqueue(ctx context.Context, stakes string, tableSize int, playerID int64, ttlSeconds int) error {
	p := r.rdb.Pipeline()
	p.SAdd(ctx, poolKey(stakes, tableSize), playerID)
	p.Set(ctx, playerKey(playerID),
		fmt.Sprintf("%s:%d", stakes, tableSize),
		time.Duration(ttlSeconds)*time.Second)
	_, err := p.Exec(ctx)
	return err
}

func (r *redisRepo) PopN(ctx context.Context, stakes string, tableSize int, n int) ([]int64, error) {
	// SPOP with a count removes n random members atomically
	res, err := r.rdb.SPopN(ctx, poolKey(stakes, tableSize), int64(n)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(res))
	if len(res) > 0 {
		p := r.rdb.Pipeline()
		for _, s := range res {
			id, convErr := strconv.ParseInt(s, 10, 64)
			if convErr != nil {
				continue
			}
			ids = append(ids, id)
			p.Del(ctx, playerKey(id))
		}
		_, _ = p.Exec(ctx)
	}
	return ids, nil
}

func (r *redisRepo) Remove(ctx context.Context, playerID int64) error {
	kv, err := r.rdb.Get(ctx, playerKey(playerID)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	// kv is "stakes:size"; stakes may itself contain colons, so split
	// from the right
	idx := len(kv) - 1
	for idx >= 0 && kv[idx] != ':' {
		idx--
	}
	if idx < 0 {
		return r.rdb.Del(ctx, playerKey(playerID)).Err()
	}
	size, convErr := strconv.Atoi(kv[idx+1:])
	if convErr != nil {
		return r.rdb.Del(ctx, playerKey(playerID)).Err()
	}

	p := r.rdb.Pipeline()
	p.SRem(ctx, poolKey(kv[:idx], size), playerID)
	p.Del(ctx, playerKey(playerID))
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) Count(ctx context.Context, stakes string, tableSize int) (int64, error) {
	return r.rdb.SCard(ctx, poolKey(stakes, tableSize)).Result()
}

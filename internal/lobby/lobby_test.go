package lobby

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ws "RiverPoker/internal/websocket"
)

// mockNotifier captures broadcasts per player.
type mockNotifier struct {
	mu   sync.Mutex
	msgs map[int64]ws.OutgoingMessage
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{msgs: make(map[int64]ws.OutgoingMessage)}
}

func (m *mockNotifier) BroadcastToPlayers(ids []int64, msg ws.OutgoingMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		m.msgs[id] = msg
	}
}

func (m *mockNotifier) msg(id int64) (ws.OutgoingMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.msgs[id]
	return msg, ok
}

// mockStarter pretends to be the game registry.
type mockStarter struct {
	mu      sync.Mutex
	nextID  int64
	created [][]int64
	started []int64
}

func (m *mockStarter) CreateGame(playerIDs []int64, _ *int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.created = append(m.created, playerIDs)
	return m.nextID, nil
}

func (m *mockStarter) StartGame(gameID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = append(m.started, gameID)
	return nil
}

func runMatchFlow(t *testing.T, repo Repo) {
	t.Helper()
	notifier := newMockNotifier()
	starter := &mockStarter{}
	svc := NewService(repo, starter, notifier, 60)

	const stakes = "cash-10-20"
	const size = 3

	// two joins queue up, no table yet
	for id := int64(1); id <= 2; id++ {
		tbl, queued, err := svc.Join(context.Background(), JoinRequest{
			PlayerID: id, Stakes: stakes, TableSize: size,
		})
		require.NoError(t, err)
		assert.True(t, queued)
		assert.Nil(t, tbl)
	}

	cnt, err := repo.Count(context.Background(), stakes, size)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)

	// the third join fills the pool and forms the table
	tbl, queued, err := svc.Join(context.Background(), JoinRequest{
		PlayerID: 3, Stakes: stakes, TableSize: size,
	})
	require.NoError(t, err)
	assert.False(t, queued)
	require.NotNil(t, tbl)
	assert.Len(t, tbl.Players, size)
	assert.ElementsMatch(t, []int64{1, 2, 3}, tbl.Players)
	assert.Equal(t, tbl.GameID, int64(1))

	// game created and started with exactly those players
	starter.mu.Lock()
	require.Len(t, starter.created, 1)
	assert.ElementsMatch(t, []int64{1, 2, 3}, starter.created[0])
	assert.Equal(t, []int64{1}, starter.started)
	starter.mu.Unlock()

	// everyone got the matched notification
	for id := int64(1); id <= 3; id++ {
		msg, ok := notifier.msg(id)
		require.True(t, ok, "player %d missed the matched broadcast", id)
		assert.Equal(t, "matched", msg.Event)
	}

	// pool drained
	cnt, err = repo.Count(context.Background(), stakes, size)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func TestMemoryRepoMatchFlow(t *testing.T) {
	runMatchFlow(t, NewMemoryRepo())
}

func TestRedisRepoMatchFlow(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	runMatchFlow(t, NewRedisRepo(rdb))
}

func TestCancelLeavesQueue(t *testing.T) {
	for _, tc := range []struct {
		name string
		repo func(t *testing.T) Repo
	}{
		{"memory", func(t *testing.T) Repo { return NewMemoryRepo() }},
		{"redis", func(t *testing.T) Repo {
			mr := miniredis.RunT(t)
			return NewRedisRepo(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			repo := tc.repo(t)
			svc := NewService(repo, &mockStarter{}, newMockNotifier(), 60)

			_, queued, err := svc.Join(context.Background(), JoinRequest{
				PlayerID: 7, Stakes: "cash-10-20", TableSize: 2,
			})
			require.NoError(t, err)
			require.True(t, queued)

			require.NoError(t, svc.Cancel(context.Background(), 7))

			cnt, err := repo.Count(context.Background(), "cash-10-20", 2)
			require.NoError(t, err)
			assert.Equal(t, int64(0), cnt)

			// cancelling an unqueued player is a no-op
			assert.NoError(t, svc.Cancel(context.Background(), 99))
		})
	}
}

func TestJoinRejectsBadTableSize(t *testing.T) {
	svc := NewService(NewMemoryRepo(), &mockStarter{}, newMockNotifier(), 60)
	_, _, err := svc.Join(context.Background(), JoinRequest{
		PlayerID: 1, Stakes: "cash-10-20", TableSize: 1,
	})
	assert.Error(t, err)
}

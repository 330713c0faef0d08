package main

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"RiverPoker/config"
	"RiverPoker/internal/auth"
	"RiverPoker/internal/game/engine"
	"RiverPoker/internal/game/registry"
	"RiverPoker/internal/lobby"
	"RiverPoker/internal/storage"
	"RiverPoker/internal/utils"
	"RiverPoker/internal/websocket"
)

// hubNotifier adapts the websocket hub to the registry's notifier.
type hubNotifier struct {
	hub *websocket.Hub
}

func (n hubNotifier) SendToPlayer(playerID int64, event string, data any) {
	n.hub.SendToPlayer(playerID, websocket.OutgoingMessage{Event: event, Data: data})
}

func (n hubNotifier) BroadcastToPlayers(playerIDs []int64, event string, data any) {
	n.hub.BroadcastToPlayers(playerIDs, websocket.OutgoingMessage{Event: event, Data: data})
}

func main() {
	config.Load()
	utils.Init()

	//-------------------------------------------------------
	// 1. Websocket hub (must start before anything delivers)
	//-------------------------------------------------------
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Close()

	//-------------------------------------------------------
	// 2. Game registry
	//-------------------------------------------------------
	reg := registry.New(hubNotifier{hub: hub}, registry.Options{
		StartingChips: config.C.Game.StartingChips,
		SmallBlind:    config.C.Game.SmallBlind,
		BigBlind:      config.C.Game.BigBlind,
	})

	if dsn := config.C.Database.DSN; dsn != "" {
		store, err := storage.OpenHandStore(dsn)
		if err != nil {
			log.Fatal("postgres init failed", "err", err)
		}
		defer store.Close()
		reg.SetResultSink(store)
	}

	// Actions may also arrive over the socket itself.
	hub.OnIncoming = func(msg websocket.IncomingMessage) {
		if msg.Event != "player_action" {
			return
		}
		payload, ok := msg.Data.(map[string]any)
		if !ok {
			return
		}
		gameID, _ := payload["gameId"].(float64)
		kind, _ := payload["action"].(string)
		amount, _ := payload["amount"].(float64)
		err := reg.SubmitAction(int64(gameID), msg.From, engine.Action{
			Kind:   engine.ActionKind(kind),
			Amount: int64(amount),
		})
		if err != nil {
			hub.SendToPlayer(msg.From, websocket.OutgoingMessage{
				Event: "action_rejected",
				Data:  map[string]any{"gameId": int64(gameID), "reason": err.Error()},
			})
		}
	}

	//-------------------------------------------------------
	// 3. Lobby, backed by Redis when available
	//-------------------------------------------------------
	var pool lobby.Repo
	if err := storage.InitRedis(config.C.Redis.Addr, config.C.Redis.Password, config.C.Redis.DB); err != nil {
		log.Warn("redis unavailable, lobby pools run in memory", "err", err)
		pool = lobby.NewMemoryRepo()
	} else {
		pool = lobby.NewRedisRepo(storage.Rdb)
	}
	svc := lobby.NewService(pool, reg, hub, config.C.Game.LobbyTTL)

	//-------------------------------------------------------
	// 4. Gin + CORS
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	secret := []byte(config.C.JWT.Secret)

	ah := auth.NewHandler(reg, secret)
	r.POST("/auth/login", ah.Login)

	authed := r.Group("/", auth.Middleware(secret))
	{
		authed.GET("/ws", websocket.ServeWS(hub))

		lh := lobby.NewHandler(svc)
		authed.POST("/lobby/join", lh.Join)
		authed.POST("/lobby/cancel", lh.Cancel)

		gh := registry.NewHandler(reg)
		authed.GET("/games/:id", gh.GetGame)
		authed.POST("/games/:id/actions", gh.PostAction)
	}

	//-------------------------------------------------------
	// 5. Serve
	//-------------------------------------------------------
	log.Info("server running", "addr", config.C.Server.Port)
	if err := r.Run(config.C.Server.Port); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}

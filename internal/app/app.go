package app

import (
	"log"

	"github.com/humanbelnik/stopbus/core/internal/config"
	http_game "github.com/humanbelnik/stopbus/core/internal/delivery/http/game"
	http_init "github.com/humanbelnik/stopbus/core/internal/delivery/http/init"
	infra_memory_room "github.com/humanbelnik/stopbus/core/internal/infra/memory/room"
	infra_pg_init "github.com/humanbelnik/stopbus/core/internal/infra/postgres/init"
	infra_postgres_room "github.com/humanbelnik/stopbus/core/internal/infra/postgres/room"
	infra_redis_init "github.com/humanbelnik/stopbus/core/internal/infra/redis/init"
	infra_redis_room "github.com/humanbelnik/stopbus/core/internal/infra/redis/room"
	service_roomlock "github.com/humanbelnik/stopbus/core/internal/service/roomlock"
	usecase_game "github.com/humanbelnik/stopbus/core/internal/usecase/game"
)

func Go(cfg *config.Config) {
	var store usecase_game.RoomStore
	switch cfg.Store.Backend {
	case "memory":
		store = infra_memory_room.New(cfg.Store.RoomTTL)
	case "redis":
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		store = infra_redis_room.New(redisConn, cfg.Store.RoomTTL)
	case "postgres":
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		store = infra_postgres_room.New(pgConn, cfg.Store.RoomTTL)
	default:
		log.Fatalf("unknown store backend: %s", cfg.Store.Backend)
	}

	gameUC := usecase_game.New(store, 20 /* expired room cleanups on every _ creation */)
	locks := service_roomlock.New()

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_game.New(gameUC, locks, http_game.WithRoundSeconds(cfg.Game.RoundSeconds)))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}

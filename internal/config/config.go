package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Store struct {
	// Backend selects the room store: "memory", "redis" or "postgres".
	Backend string
	RoomTTL time.Duration
}

type Game struct {
	// RoundSeconds is advisory for clients running the round timer;
	// the engine itself is clockless.
	RoundSeconds int
}

type Config struct {
	HTTP     HTTPServer
	Redis    Redis
	Postgres Postgres
	Store    Store
	Game     Game
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Store:    *newStore(),
		Game:     *newGame(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *Redis {
	return &Redis{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "stopbus"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newStore() *Store {
	return &Store{
		Backend: getenv("STORE_BACKEND", "memory"),
		RoomTTL: time.Duration(getenvInt("ROOM_TTL_SECONDS", 3600)) * time.Second,
	}
}

func newGame() *Game {
	return &Game{
		RoundSeconds: getenvInt("ROUND_SECONDS", 60),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("%s %s must be an integer : %v", logtag, key, err)
	}
	fmt.Printf("%s %s = %d\n", logtag, key, n)
	return n
}

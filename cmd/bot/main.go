package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/weirdoworks/warband-bot/internal/config"
	"github.com/weirdoworks/warband-bot/internal/gamedata"
	"github.com/weirdoworks/warband-bot/internal/handlers/discord"
	"github.com/weirdoworks/warband-bot/internal/repositories/warbands"
	warbandService "github.com/weirdoworks/warband-bot/internal/services/warband"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	catalog, err := gamedata.Load()
	if err != nil {
		log.Fatalf("Failed to load game data catalog: %v", err)
	}

	// Keep the Redis client for cleanup
	var redisClient *redis.Client

	var repository warbandService.Repository
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				redisClient = nil
			} else {
				log.Println("Using Redis for persistence")
				repository = warbands.NewRedis(redisClient, nil)
			}
		}
	}
	if repository == nil {
		log.Println("Using in-memory warband repository")
		repository = warbands.NewInMemoryRepository()
	}

	svc := warbandService.NewService(&warbandService.ServiceConfig{
		Repository: repository,
	})

	handler := discord.NewHandler(&discord.HandlerConfig{
		WarbandService: svc,
		Catalog:        catalog,
	})

	dg.AddHandler(handler.HandleInteraction)

	if err := dg.Open(); err != nil {
		log.Fatalf("Failed to open Discord connection: %v", err)
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			log.Printf("Failed to close Discord session: %v", closeErr)
		}
	}()

	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}

	log.Println("Warband bot is running. Press CTRL-C to exit.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close Redis client: %v", err)
		}
	}
}

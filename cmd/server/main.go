package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	handler "github.com/classvote/urna/internal/adapters/handler/http"
	"github.com/classvote/urna/internal/adapters/oauth/google"
	"github.com/classvote/urna/internal/adapters/repository/postgres"
	"github.com/classvote/urna/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	voterRepo := postgres.NewVoterRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	resultRepo := postgres.NewResultRepository(db)
	userRepo := postgres.NewUserRepository(db)
	authRepo := postgres.NewAuthRepository(db)

	voterSvc := services.NewVoterService(voterRepo)
	candidateSvc := services.NewCandidateService(candidateRepo)
	ballotSvc := services.NewBallotService(voterRepo, candidateRepo, voteRepo)
	resultSvc := services.NewResultService(resultRepo)
	userSvc := services.NewUserService(userRepo)
	authSvc := services.NewAuthService(userRepo, authRepo, google.NewVerifier())

	handlers := handler.Handlers{
		Voter:     handler.NewVoterHandler(voterSvc),
		Candidate: handler.NewCandidateHandler(candidateSvc),
		Ballot:    handler.NewBallotHandler(ballotSvc),
		Result:    handler.NewResultHandler(resultSvc),
		Auth:      handler.NewAuthHandler(authSvc, os.Getenv("COOKIE_DOMAIN"), stdhttp.SameSiteLaxMode),
		User:      handler.NewUserHandler(userSvc),
	}

	allowedOrigins := []string{"*"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	router := handler.NewHandler(handlers, allowedOrigins)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}
	server := &stdhttp.Server{Addr: addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func dbConnString() string {
	dbName := os.Getenv("POSTGRES_DB")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}

package app

import (
	"context"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/domain/matching"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/logger"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service

	JobMatches    usecase.JobMatchUsecase
	MentorMatches usecase.MentorMatchUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	log, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, log)
	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)

	jobRanker, err := matching.NewRanker(matching.Config{
		Domain:   matching.DomainJob,
		Weights:  matching.JobWeights(),
		MinScore: cfg.Matching.JobMinScore,
		Workers:  cfg.Matching.Workers,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	mentorRanker, err := matching.NewRanker(matching.Config{
		Domain:   matching.DomainMentorship,
		Weights:  matching.MentorshipWeights(),
		MinScore: cfg.Matching.MentorMinScore,
		Workers:  cfg.Matching.Workers,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	subjects := repository.NewPostgresSubjectRepository(db)
	jobs := repository.NewPostgresJobTargetRepository(db)
	mentors := repository.NewPostgresMentorTargetRepository(db)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  redisCache,
		JWT:    jwtSvc,

		JobMatches:    usecase.NewJobMatchUsecase(subjects, jobs, jobRanker, redisCache, cfg.Redis.TTL, cfg.Matching.FetchTimeout, log),
		MentorMatches: usecase.NewMentorMatchUsecase(subjects, mentors, mentorRanker, redisCache, cfg.Redis.TTL, cfg.Matching.FetchTimeout, log),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

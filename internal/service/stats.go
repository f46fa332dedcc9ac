package service

import (
	"context"
	"log/slog"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository"
)

// PingFunc reports whether a backing store is reachable.
type PingFunc func(ctx context.Context) error

// Status is the liveness of the two backing stores.
type Status struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

// Stats counts users and file records.
type Stats struct {
	Users int `json:"users"`
	Files int `json:"files"`
}

// StatsService answers /status and /stats.
type StatsService interface {
	Status(ctx context.Context) Status
	Stats(ctx context.Context) Stats
}

type statsService struct {
	users       repository.UserRepository
	files       repository.FileRepository
	pingDB      PingFunc
	pingSession PingFunc
	log         *slog.Logger
}

// NewStatsService constructs a StatsService. Counts that cannot be read are
// reported as zero.
func NewStatsService(users repository.UserRepository, files repository.FileRepository, pingDB, pingSession PingFunc, log *slog.Logger) StatsService {
	if log == nil {
		log = slog.Default()
	}
	return &statsService{users: users, files: files, pingDB: pingDB, pingSession: pingSession, log: log}
}

func (s *statsService) Status(ctx context.Context) Status {
	return Status{
		Redis: alive(ctx, s.pingSession),
		DB:    alive(ctx, s.pingDB),
	}
}

func (s *statsService) Stats(ctx context.Context) Stats {
	var st Stats
	var err error
	if st.Users, err = s.users.Count(ctx); err != nil {
		s.log.WarnContext(ctx, "count users", "error", err)
		st.Users = 0
	}
	if st.Files, err = s.files.Count(ctx); err != nil {
		s.log.WarnContext(ctx, "count files", "error", err)
		st.Files = 0
	}
	return st
}

func alive(ctx context.Context, ping PingFunc) bool {
	return ping != nil && ping(ctx) == nil
}

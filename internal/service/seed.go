package service

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"teamops-backend/internal/config"
	"teamops-backend/internal/database/models"
	"teamops-backend/internal/logger"
	"teamops-backend/internal/repository"
	"teamops-backend/internal/seed"
)

// SeedService populates a fresh installation with synthetic history: roster,
// attendance and work logs. Runs once; a non-empty attendance table means the
// installation is already primed.
type SeedService struct {
	memberRepo     repository.MemberRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
	workLogRepo    repository.WorkLogRepositoryInterface
	cfg            *config.Config
	log            *logger.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(memberRepo repository.MemberRepositoryInterface, attendanceRepo repository.AttendanceRepositoryInterface, workLogRepo repository.WorkLogRepositoryInterface, cfg *config.Config, log *logger.Logger) *SeedService {
	return &SeedService{
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
		workLogRepo:    workLogRepo,
		cfg:            cfg,
		log:            log,
	}
}

// SeedIfEmpty generates and persists synthetic history when the attendance
// table is empty. Returns true when seeding ran.
func (s *SeedService) SeedIfEmpty() (bool, error) {
	count, err := s.attendanceRepo.Count()
	if err != nil {
		return false, fmt.Errorf("failed to count attendance records: %w", err)
	}
	if count > 0 {
		s.log.WithField("records", count).Debug("attendance table already populated, skipping seed")
		return false, nil
	}

	members, err := s.ensureRoster()
	if err != nil {
		return false, err
	}

	missionStart, err := s.cfg.MissionStart()
	if err != nil {
		return false, fmt.Errorf("invalid mission start date: %w", err)
	}

	randomSeed := s.cfg.SeedRandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(randomSeed))

	generator := seed.New(seed.Defaults(missionStart, time.Now()), rng)
	attendance := generator.AttendanceHistory(members)
	workLogs := generator.WorkLogs(members, attendance)

	if err := s.attendanceRepo.CreateBatch(attendance); err != nil {
		return false, fmt.Errorf("failed to persist attendance history: %w", err)
	}
	if err := s.workLogRepo.CreateBatch(workLogs); err != nil {
		return false, fmt.Errorf("failed to persist work logs: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"members":     len(members),
		"attendance":  len(attendance),
		"work_logs":   len(workLogs),
		"random_seed": randomSeed,
	}).Info("seeded synthetic history")
	return true, nil
}

// ensureRoster loads the roster into the database on first boot and returns
// the persisted members.
func (s *SeedService) ensureRoster() ([]models.TeamMember, error) {
	count, err := s.memberRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if count > 0 {
		return s.memberRepo.GetAll()
	}

	roster, err := s.loadRoster()
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.CreateBatch(roster); err != nil {
		return nil, fmt.Errorf("failed to persist roster: %w", err)
	}
	s.log.WithField("members", len(roster)).Info("loaded roster")
	return roster, nil
}

func (s *SeedService) loadRoster() ([]models.TeamMember, error) {
	path := s.cfg.RosterFile
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			roster, err := seed.LoadRoster(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load roster file %s: %w", path, err)
			}
			return roster, nil
		}
		s.log.WithField("path", path).Debug("roster file not found, using built-in roster")
	}
	return seed.DefaultRoster(), nil
}

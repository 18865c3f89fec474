package services

import (
	"log"
	"sync"
	"time"

	"agrivision/internal/models"
	"agrivision/internal/repository"
)

// LeaderboardCache holds the materialized leaderboard snapshot refreshed
// after each successful ranking run.
type LeaderboardCache interface {
	StoreLeaderboard(entries []models.LeaderboardEntry, ttl time.Duration) error
}

// LeaderboardJob recomputes every profile's dense rank on a fixed cadence.
// Each run is a full recompute applied atomically; a failed run leaves the
// previous ranks untouched until the next tick.
type LeaderboardJob struct {
	repo     repository.LeaderboardRepository
	cache    LeaderboardCache
	interval time.Duration
	topSize  int

	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

func NewLeaderboardJob(repo repository.LeaderboardRepository, cache LeaderboardCache, interval time.Duration) *LeaderboardJob {
	if interval <= 0 {
		interval = 60 * time.Minute
	}
	return &LeaderboardJob{
		repo:     repo,
		cache:    cache,
		interval: interval,
		topSize:  100,
		stopChan: make(chan struct{}),
	}
}

func (j *LeaderboardJob) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
}

func (j *LeaderboardJob) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopChan)
	j.wg.Wait()
}

func (j *LeaderboardJob) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := j.RunOnce(); err != nil {
				log.Printf("Leaderboard ranking run failed, ranks stay stale until next tick: %v", err)
			}
		case <-j.stopChan:
			return
		}
	}
}

// RunOnce performs one full rank recompute and refreshes the cached snapshot
// on success. Returns the number of profiles ranked.
func (j *LeaderboardJob) RunOnce() (int, error) {
	ranked, err := j.repo.UpdateRanks()
	if err != nil {
		return 0, err
	}

	if ranked == 0 {
		log.Println("No users to rank")
		return 0, nil
	}

	log.Printf("Leaderboard ranks updated for %d users", ranked)
	j.refreshCache()

	return ranked, nil
}

// refreshCache is best-effort; a cache miss just falls back to the database.
func (j *LeaderboardJob) refreshCache() {
	if j.cache == nil {
		return
	}

	profiles, err := j.repo.FindTop(j.topSize)
	if err != nil {
		log.Printf("Failed to read top profiles for cache refresh: %v", err)
		return
	}

	entries := make([]models.LeaderboardEntry, 0, len(profiles))
	for i := range profiles {
		entries = append(entries, models.LeaderboardEntryFromProfile(&profiles[i]))
	}

	if err := j.cache.StoreLeaderboard(entries, j.interval+5*time.Minute); err != nil {
		log.Printf("Failed to refresh leaderboard cache: %v", err)
	}
}

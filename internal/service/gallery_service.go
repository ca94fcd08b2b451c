package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/iconidentify/skygallery/internal/domain"
	"github.com/iconidentify/skygallery/internal/facts"
	"github.com/iconidentify/skygallery/internal/feed"
	"github.com/iconidentify/skygallery/internal/view"
)

// HomePage is what the page-load fetch produces. When the fetch fails both
// fields stay unset and the page renders without them.
type HomePage struct {
	// HasHero is false when the hero region must be left untouched.
	HasHero bool
	Hero    view.Hero
	Fact    string
}

// GalleryService owns the gallery's item snapshot and builds the views the
// front ends render. Only the service writes the snapshot; each gallery
// fetch replaces it wholesale.
type GalleryService struct {
	source feed.Source
	facts  *facts.Picker
	logger *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	mu       sync.RWMutex
	snapshot *domain.Snapshot
}

// NewGalleryService creates a gallery service reading from source.
// A nil rng uses a randomly seeded source.
func NewGalleryService(source feed.Source, rng *rand.Rand, logger *slog.Logger) *GalleryService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GalleryService{
		source: source,
		facts:  facts.NewPicker(rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))),
		logger: logger,
		rng:    rng,
	}
}

// Home performs the page-load fetch and selects a hero video and a fact.
// Failures are logged and leave both unset; they never reach the caller.
// The page-load fetch does not touch the gallery snapshot.
func (s *GalleryService) Home(ctx context.Context) HomePage {
	hero, ok, err := s.Hero(ctx)
	if err != nil {
		s.logger.Warn("could not load hero video", "error", err)
		return HomePage{}
	}
	return HomePage{HasHero: ok, Hero: hero, Fact: s.facts.Pick()}
}

// Hero fetches the feed and selects a hero from its videos. ok is false
// when the feed holds no videos.
func (s *GalleryService) Hero(ctx context.Context) (hero view.Hero, ok bool, err error) {
	items, err := s.source.Fetch(ctx)
	if err != nil {
		return view.Hero{}, false, err
	}
	hero, ok = s.pickHero(items)
	return hero, ok, nil
}

// Gallery performs the button-triggered fetch and builds the card grid.
// Unlike Home, the error is returned so the caller can show it.
func (s *GalleryService) Gallery(ctx context.Context) (view.Gallery, error) {
	snap, err := s.refresh(ctx)
	if err != nil {
		s.logger.Error("failed to load gallery", "error", err)
		return view.Gallery{}, err
	}
	return view.BuildGallery(snap), nil
}

// Detail returns the modal content for item index of the given snapshot.
func (s *GalleryService) Detail(id domain.SnapshotID, index int) (view.Detail, error) {
	snap := s.Snapshot()
	if snap == nil || snap.ID != id {
		return view.Detail{}, domain.ErrSnapshotExpired
	}
	if index < 0 || index >= len(snap.Items) {
		return view.Detail{}, domain.ErrItemNotFound
	}
	return view.BuildDetail(snap.Items[index]), nil
}

// Facts returns every fact the picker draws from.
func (s *GalleryService) Facts() []string {
	return facts.All()
}

// Snapshot returns the snapshot behind the current gallery, or nil.
func (s *GalleryService) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Ping checks that the feed can be fetched without replacing the snapshot.
func (s *GalleryService) Ping(ctx context.Context) error {
	_, err := s.source.Fetch(ctx)
	return err
}

func (s *GalleryService) refresh(ctx context.Context) (*domain.Snapshot, error) {
	items, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	snap := domain.NewSnapshot(items)

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.logger.Info("feed snapshot replaced",
		"snapshot_id", snap.ID.String(),
		"items", len(items),
	)
	return snap, nil
}

func (s *GalleryService) pickHero(items []domain.Item) (view.Hero, bool) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return view.SelectHero(items, s.rng, s.logger)
}

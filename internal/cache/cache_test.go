package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-player/internal/booster"
	"github.com/KirkDiggler/rpg-player/internal/cache"
	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/pkg/clock/clockfake"
	"github.com/KirkDiggler/rpg-player/internal/player"
	playerrepo "github.com/KirkDiggler/rpg-player/internal/repositories/player"
	playermock "github.com/KirkDiggler/rpg-player/internal/repositories/player/mock"
	"github.com/KirkDiggler/rpg-player/internal/testutils"
)

type CacheTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *playermock.MockRepository
	clock    *clockfake.Clock
	cache    *cache.Cache
	ctx      context.Context
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = playermock.NewMockRepository(s.ctrl)
	s.clock = clockfake.New(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	c, err := cache.New(&cache.Config{
		Repository: s.mockRepo,
		Clock:      s.clock,
		Roller:     testutils.FixedRoller(1),
		Booster:    booster.NewStatic(),
	})
	s.Require().NoError(err)
	s.cache = c
}

func (s *CacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CacheTestSuite) expectMiss(id string) {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), playerrepo.GetInput{ID: id}).
		Return(nil, errors.NotFoundf("player %s not found", id)).
		Times(1)
}

func (s *CacheTestSuite) TestNewValidation() {
	_, err := cache.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = cache.New(&cache.Config{IdleTTL: -time.Second})
	s.Require().Error(err)
	s.Contains(err.Error(), "Repository: is required")
	s.Contains(err.Error(), "IdleTTL: must be positive")
}

func (s *CacheTestSuite) TestGetMissCreatesDefault() {
	s.expectMiss("u1")

	p, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal("u1", p.ID())
	s.Equal(1, p.Level())
	s.Equal(rpg.PathNone, p.Path())
	s.Equal(1, s.cache.Len())

	again, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)
	s.Same(p, again)
}

func (s *CacheTestSuite) TestGetLoadsStoredRecord() {
	rec := testutils.WarriorGuardian("u1")
	s.mockRepo.EXPECT().
		Get(gomock.Any(), playerrepo.GetInput{ID: "u1"}).
		Return(&playerrepo.GetOutput{Record: rec}, nil)

	p, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(40, p.Level())
	s.Equal([]rpg.Class{rpg.ClassGuardian}, p.Classes())
}

func (s *CacheTestSuite) TestGetStoreFailure() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), playerrepo.GetInput{ID: "u1"}).
		Return(nil, errors.Persistence(fmt.Errorf("timeout"), "failed to get player u1"))

	p, err := s.cache.Get(s.ctx, "u1")
	s.Nil(p)
	s.True(errors.IsPersistence(err))
	s.Zero(s.cache.Len())
}

func (s *CacheTestSuite) TestGetEmptyID() {
	_, err := s.cache.Get(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CacheTestSuite) TestConcurrentMissesShareOneRead() {
	release := make(chan struct{})
	s.mockRepo.EXPECT().
		Get(gomock.Any(), playerrepo.GetInput{ID: "u1"}).
		DoAndReturn(func(_ context.Context, input playerrepo.GetInput) (*playerrepo.GetOutput, error) {
			<-release
			return nil, errors.NotFoundf("player %s not found", input.ID)
		}).
		Times(1)

	const callers = 16
	results := make([]*player.Player, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := s.cache.Get(s.ctx, "u1")
			s.NoError(err)
			results[i] = p
		}(i)
	}
	close(release)
	wg.Wait()

	for _, p := range results {
		s.Same(results[0], p)
	}
}

func (s *CacheTestSuite) TestSweepEvictsIdleEntryWithOneSave() {
	s.expectMiss("u1")
	_, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input playerrepo.SaveInput) (*playerrepo.SaveOutput, error) {
			s.Equal("u1", input.Record.ID)
			return &playerrepo.SaveOutput{}, nil
		}).
		Times(1)

	s.clock.Advance(cache.DefaultIdleTTL)
	result := s.cache.Sweep(s.ctx)

	s.Equal(cache.SweepResult{Evicted: 1}, result)
	s.Zero(s.cache.Len())

	// a second sweep has nothing to do
	s.Equal(cache.SweepResult{}, s.cache.Sweep(s.ctx))

	s.expectMiss("u1")
	_, err = s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)
}

func (s *CacheTestSuite) TestSweepKeepsRecentlyUsedEntries() {
	s.expectMiss("u1")
	_, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)

	s.clock.Advance(15 * time.Minute)
	_, err = s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)

	s.clock.Advance(10 * time.Minute)
	s.Equal(cache.SweepResult{}, s.cache.Sweep(s.ctx))
	s.Equal(1, s.cache.Len())
}

func (s *CacheTestSuite) TestSweepKeepsLockedEntryResident() {
	s.expectMiss("u1")
	p, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)
	s.Require().True(p.Lock("flow"))

	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&playerrepo.SaveOutput{}, nil).Times(1)

	s.clock.Advance(cache.DefaultIdleTTL + time.Minute)
	s.Equal(cache.SweepResult{Retained: 1}, s.cache.Sweep(s.ctx))
	s.Equal(1, s.cache.Len())

	// idle time was reset, so an immediate sweep does not save again
	s.Equal(cache.SweepResult{}, s.cache.Sweep(s.ctx))

	again, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)
	s.Same(p, again)
}

func (s *CacheTestSuite) TestSweepFailedSaveKeepsEntry() {
	s.expectMiss("u1")
	_, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(nil, errors.Persistence(fmt.Errorf("down"), "failed to save player u1")),
		s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(&playerrepo.SaveOutput{}, nil),
	)

	s.clock.Advance(cache.DefaultIdleTTL)
	s.Equal(cache.SweepResult{Failed: 1}, s.cache.Sweep(s.ctx))
	s.Equal(1, s.cache.Len())

	s.Equal(cache.SweepResult{Evicted: 1}, s.cache.Sweep(s.ctx))
	s.Zero(s.cache.Len())
}

func (s *CacheTestSuite) TestDeleteResident() {
	s.expectMiss("u1")
	_, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Delete(gomock.Any(), playerrepo.DeleteInput{ID: "u1"}).
		Return(&playerrepo.DeleteOutput{Existed: false}, nil)

	s.Require().NoError(s.cache.Delete(s.ctx, "u1"))
	s.Zero(s.cache.Len())

	// nothing left to flush on the next sweep
	s.clock.Advance(cache.DefaultIdleTTL)
	s.Equal(cache.SweepResult{}, s.cache.Sweep(s.ctx))
}

func (s *CacheTestSuite) TestDeleteNotResident() {
	s.mockRepo.EXPECT().
		Delete(gomock.Any(), playerrepo.DeleteInput{ID: "u2"}).
		Return(&playerrepo.DeleteOutput{Existed: true}, nil)

	s.NoError(s.cache.Delete(s.ctx, "u2"))
}

func (s *CacheTestSuite) TestDeleteFailure() {
	s.mockRepo.EXPECT().
		Delete(gomock.Any(), playerrepo.DeleteInput{ID: "u2"}).
		Return(nil, errors.Persistence(fmt.Errorf("down"), "failed to delete player u2"))

	err := s.cache.Delete(s.ctx, "u2")
	s.True(errors.IsPersistence(err))
}

func (s *CacheTestSuite) TestSave() {
	s.expectMiss("u1")
	p, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)

	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&playerrepo.SaveOutput{}, nil)
	s.NoError(s.cache.Save(s.ctx, p))
	s.Equal(1, s.cache.Len())

	s.True(errors.IsInvalidArgument(s.cache.Save(s.ctx, nil)))
}

func (s *CacheTestSuite) TestFlush() {
	s.expectMiss("u1")
	s.expectMiss("u2")
	_, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)
	_, err = s.cache.Get(s.ctx, "u2")
	s.Require().NoError(err)

	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&playerrepo.SaveOutput{}, nil).Times(2)
	s.NoError(s.cache.Flush(s.ctx))
	s.Equal(2, s.cache.Len())
}

func (s *CacheTestSuite) TestFlushReportsFailures() {
	s.expectMiss("u1")
	_, err := s.cache.Get(s.ctx, "u1")
	s.Require().NoError(err)

	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Persistence(fmt.Errorf("down"), "failed to save player u1"))

	err = s.cache.Flush(s.ctx)
	s.True(errors.IsPersistence(err))
}

func TestRunFlushesOnShutdown(t *testing.T) {
	repo := playerrepo.NewInMemory()
	c, err := cache.New(&cache.Config{
		Repository:    repo,
		Clock:         clockfake.New(time.Now()),
		Roller:        testutils.FixedRoller(1),
		Booster:       booster.NewStatic(),
		SweepInterval: time.Hour,
	})
	require.NoError(t, err)

	p, err := c.Get(context.Background(), "u1")
	require.NoError(t, err)
	p.SetLevelPing(true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	out, err := repo.Get(context.Background(), playerrepo.GetInput{ID: "u1"})
	require.NoError(t, err)
	assert.True(t, out.Record.LevelPing)
}

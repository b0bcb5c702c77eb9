package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"activity_stream/internal/config"
	"activity_stream/internal/domain"
	"activity_stream/internal/provider"
	"activity_stream/internal/service/mocks"
)

// fakeAdapter returns canned posts and counts invocations.
type fakeAdapter struct {
	mu    sync.Mutex
	calls int
	posts []provider.RawPost
	err   error
}

func (f *fakeAdapter) FetchRecent(ctx context.Context, conn domain.Connection) ([]provider.RawPost, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.posts, f.err
}

func (f *fakeAdapter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeNormalizer decodes the minimal test payload shape.
type fakeNormalizer struct{}

type testPayload struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Body      string `json:"body"`
	Malformed bool   `json:"malformed"`
}

func (fakeNormalizer) Normalize(raw provider.RawPost, conn domain.Connection) (domain.ActivityItem, error) {
	var p testPayload
	if err := json.Unmarshal(raw.Payload, &p); err != nil || p.Malformed {
		return domain.ActivityItem{}, &domain.NormalizationError{
			Provider: raw.Provider,
			SourceID: raw.SourceID,
			Err:      fmt.Errorf("bad payload"),
		}
	}
	date, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		return domain.ActivityItem{}, &domain.NormalizationError{
			Provider: raw.Provider,
			SourceID: raw.SourceID,
			Err:      err,
		}
	}
	return domain.ActivityItem{
		ConnectionID: conn.ID,
		Provider:     raw.Provider,
		Type:         domain.ItemTypeStatus,
		Date:         date,
		Body:         p.Body,
		SourceID:     p.ID,
		RawData:      raw.Payload,
		IsPublished:  true,
		IsActive:     true,
	}, nil
}

type fakePolicy struct {
	published bool
	err       error
}

func (f fakePolicy) Annotate(ctx context.Context, item *domain.ActivityItem, raw provider.RawPost, conn domain.Connection) (bool, error) {
	return f.published, f.err
}

func rawPost(id, date, body string) provider.RawPost {
	payload, _ := json.Marshal(testPayload{ID: id, Date: date, Body: body})
	return provider.RawPost{Provider: domain.ProviderTwitter, SourceID: id, Payload: payload}
}

func malformedPost(id string) provider.RawPost {
	payload, _ := json.Marshal(testPayload{ID: id, Malformed: true})
	return provider.RawPost{Provider: domain.ProviderTwitter, SourceID: id, Payload: payload}
}

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	streams     *mocks.MockStreamStore
	streamConns *mocks.MockStreamConnectionStore
	items       *mocks.MockItemStore
	directory   *mocks.MockConnectionDirectory
	publisher   *mocks.MockPublisher

	registry *provider.Registry
	service  *SyncService

	now    time.Time
	stream *domain.Stream
	sc     domain.StreamConnection
	conn   domain.Connection
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.streams = mocks.NewMockStreamStore(s.ctrl)
	s.streamConns = mocks.NewMockStreamConnectionStore(s.ctrl)
	s.items = mocks.NewMockItemStore(s.ctrl)
	s.directory = mocks.NewMockConnectionDirectory(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.registry = provider.NewRegistry()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSyncService(
		s.registry,
		s.streams,
		s.streamConns,
		s.items,
		s.directory,
		s.publisher,
		logger,
		config.SyncConfig{
			ConnectionTimeout: time.Minute,
		},
	)

	s.now = time.Date(2015, 6, 1, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }

	s.stream = &domain.Stream{ID: 1, UserID: 7, IsPublished: true, IsActive: true}
	s.sc = domain.StreamConnection{
		ID:                 5,
		StreamID:           1,
		ConnectionID:       100,
		Provider:           domain.ProviderTwitter,
		StreamRefreshHours: 1,
		PostDelayHours:     0,
		IsPublished:        true,
		IsActive:           true,
		Updated:            s.now.Add(-24 * time.Hour),
	}
	s.conn = domain.Connection{
		ID:                100,
		UserID:            7,
		Provider:          domain.ProviderTwitter,
		ExternalAccountID: "900",
		Username:          "ada",
		AuthToken:         "tok",
		IsActive:          true,
	}
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) register(adapter provider.Adapter, policy provider.Policy) {
	s.registry.Register(domain.ProviderTwitter, provider.Bundle{
		Adapter:    adapter,
		Normalizer: fakeNormalizer{},
		Policy:     policy,
	})
}

func (s *SyncServiceTestSuite) expectStreamLoad() {
	s.streams.EXPECT().Get(gomock.Any(), int64(1)).Return(s.stream, nil)
	s.streamConns.EXPECT().ListActiveByStream(gomock.Any(), int64(1)).
		Return([]domain.StreamConnection{s.sc}, nil)
	s.directory.EXPECT().ListActiveConnections(gomock.Any(), int64(7)).
		Return([]domain.Connection{s.conn}, nil)
}

func (s *SyncServiceTestSuite) TestRunSync_StoresNewItemsSkipsDuplicate() {
	adapter := &fakeAdapter{posts: []provider.RawPost{
		rawPost("t1", "2015-06-01T10:00:00Z", "first"),
		rawPost("t2", "2015-06-01T11:00:00Z", "second"),
		rawPost("t3", "2015-06-01T09:00:00Z", "already there"),
	}}
	s.register(adapter, fakePolicy{published: true})

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)

	s.items.EXPECT().UpsertIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, item *domain.ActivityItem) (bool, error) {
			s.Equal(int64(1), item.StreamID)
			s.True(item.IsPublished)
			// t3 was ingested by a previous partial run
			return item.SourceID != "t3", nil
		},
	).Times(3)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.streamConns.EXPECT().AdvanceWatermark(gomock.Any(), int64(5), s.now).Return(nil)

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	s.Require().Len(stats.Connections, 1)
	cs := stats.Connections[0]
	s.Equal(3, cs.Fetched)
	s.Equal(2, cs.Stored)
	s.Equal(1, cs.Duplicates)
	s.Equal(0, cs.Malformed)
	s.NoError(cs.Err)
}

func (s *SyncServiceTestSuite) TestRunSync_FetchFailureKeepsWatermark() {
	adapter := &fakeAdapter{err: &domain.FetchError{Provider: domain.ProviderTwitter, Err: fmt.Errorf("401")}}
	s.register(adapter, fakePolicy{published: true})

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)
	// no AdvanceWatermark expectation: a failed sync must not advance it

	stats, err := s.service.RunSync(context.Background(), 1)

	s.Error(err)
	s.Require().Len(stats.Connections, 1)
	s.Error(stats.Connections[0].Err)
	s.Equal(1, stats.Failed())
}

func (s *SyncServiceTestSuite) TestRunSync_SkipsInsideRefreshWindow() {
	adapter := &fakeAdapter{posts: []provider.RawPost{rawPost("t1", "2015-06-01T10:00:00Z", "x")}}
	s.register(adapter, fakePolicy{published: true})

	// adjusted now is 30m past the watermark plus the 1h delay, still short
	// of the 2h window
	s.sc.StreamRefreshHours = 2
	s.sc.PostDelayHours = 1
	s.sc.Updated = s.now.Add(-30 * time.Minute)

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(12, nil)

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	s.True(stats.Connections[0].Skipped)
	s.Equal(0, adapter.callCount())
}

func (s *SyncServiceTestSuite) TestRunSync_DueJustPastRefreshWindow() {
	adapter := &fakeAdapter{}
	s.register(adapter, fakePolicy{published: true})

	s.sc.StreamRefreshHours = 2
	s.sc.PostDelayHours = 1
	s.sc.Updated = s.now.Add(-3*time.Hour - time.Minute)

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(12, nil)
	s.streamConns.EXPECT().AdvanceWatermark(gomock.Any(), int64(5), s.now).Return(nil)

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	s.False(stats.Connections[0].Skipped)
	s.Equal(1, adapter.callCount())
}

func (s *SyncServiceTestSuite) TestRunSync_BootstrapIgnoresWindow() {
	adapter := &fakeAdapter{posts: []provider.RawPost{rawPost("t1", "2015-06-01T10:00:00Z", "x")}}
	s.register(adapter, fakePolicy{published: true})

	// watermark is fresh, but no published items exist yet
	s.sc.Updated = s.now

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)
	s.items.EXPECT().UpsertIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.streamConns.EXPECT().AdvanceWatermark(gomock.Any(), int64(5), s.now).Return(nil)

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	s.Equal(1, stats.Connections[0].Stored)
	s.Equal(1, adapter.callCount())
}

func (s *SyncServiceTestSuite) TestRunSync_UnknownProviderSkippedSilently() {
	s.sc.Provider = "linkedin"

	s.expectStreamLoad()

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	s.True(stats.Connections[0].Skipped)
}

func (s *SyncServiceTestSuite) TestRunSync_PartialFetchStillProcessesRest() {
	adapter := &fakeAdapter{
		posts: []provider.RawPost{rawPost("p1", "2015-06-01T10:00:00Z", "survivor")},
		err: &domain.PartialFetchError{
			Provider:   domain.ProviderTwitter,
			Collection: "photos",
			Err:        fmt.Errorf("503"),
		},
	}
	s.register(adapter, fakePolicy{published: true})

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)
	s.items.EXPECT().UpsertIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.streamConns.EXPECT().AdvanceWatermark(gomock.Any(), int64(5), s.now).Return(nil)

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	cs := stats.Connections[0]
	s.True(cs.Partial)
	s.Equal(1, cs.Stored)
	s.NoError(cs.Err)
}

func (s *SyncServiceTestSuite) TestRunSync_MalformedPostSkipped() {
	adapter := &fakeAdapter{posts: []provider.RawPost{
		malformedPost("bad"),
		rawPost("ok", "2015-06-01T10:00:00Z", "fine"),
	}}
	s.register(adapter, fakePolicy{published: true})

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)
	s.items.EXPECT().UpsertIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.streamConns.EXPECT().AdvanceWatermark(gomock.Any(), int64(5), s.now).Return(nil)

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	cs := stats.Connections[0]
	s.Equal(2, cs.Fetched)
	s.Equal(1, cs.Malformed)
	s.Equal(1, cs.Stored)
}

func (s *SyncServiceTestSuite) TestRunSync_PolicySuppressionStoredUnpublished() {
	adapter := &fakeAdapter{posts: []provider.RawPost{rawPost("t1", "2015-06-01T10:00:00Z", "private")}}
	s.register(adapter, fakePolicy{published: false})

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)
	s.items.EXPECT().UpsertIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, item *domain.ActivityItem) (bool, error) {
			s.False(item.IsPublished)
			return true, nil
		},
	)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.streamConns.EXPECT().AdvanceWatermark(gomock.Any(), int64(5), s.now).Return(nil)

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	s.Equal(1, stats.Connections[0].Suppressed)
}

func (s *SyncServiceTestSuite) TestRunSync_PolicyLookupErrorIsNeutral() {
	adapter := &fakeAdapter{posts: []provider.RawPost{rawPost("t1", "2015-06-01T10:00:00Z", "x")}}
	s.register(adapter, fakePolicy{
		published: true,
		err: &domain.PolicyLookupError{
			Provider: domain.ProviderTwitter,
			SourceID: "t1",
			Err:      fmt.Errorf("timeout"),
		},
	})

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)
	s.items.EXPECT().UpsertIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, item *domain.ActivityItem) (bool, error) {
			s.True(item.IsPublished)
			return true, nil
		},
	)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.streamConns.EXPECT().AdvanceWatermark(gomock.Any(), int64(5), s.now).Return(nil)

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	s.Equal(0, stats.Connections[0].Suppressed)
}

func (s *SyncServiceTestSuite) TestRunSync_PlainPolicyErrorAppliesDecision() {
	adapter := &fakeAdapter{posts: []provider.RawPost{rawPost("t1", "2015-06-01T10:00:00Z", "x")}}
	s.register(adapter, fakePolicy{published: false, err: fmt.Errorf("unexpected payload shape")})

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)
	s.items.EXPECT().UpsertIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, item *domain.ActivityItem) (bool, error) {
			s.False(item.IsPublished)
			return true, nil
		},
	)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.streamConns.EXPECT().AdvanceWatermark(gomock.Any(), int64(5), s.now).Return(nil)

	stats, err := s.service.RunSync(context.Background(), 1)

	s.NoError(err)
	s.Equal(1, stats.Connections[0].Stored)
	s.Equal(1, stats.Connections[0].Suppressed)
}

func (s *SyncServiceTestSuite) TestRunSync_StoreDownKeepsWatermark() {
	adapter := &fakeAdapter{posts: []provider.RawPost{rawPost("t1", "2015-06-01T10:00:00Z", "x")}}
	s.register(adapter, fakePolicy{published: true})

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)
	s.items.EXPECT().UpsertIfAbsent(gomock.Any(), gomock.Any()).Return(false, fmt.Errorf("connection refused"))

	stats, err := s.service.RunSync(context.Background(), 1)

	s.Error(err)
	s.Error(stats.Connections[0].Err)
}

func (s *SyncServiceTestSuite) TestRunSync_NilPublisher() {
	adapter := &fakeAdapter{posts: []provider.RawPost{rawPost("t1", "2015-06-01T10:00:00Z", "x")}}
	s.register(adapter, fakePolicy{published: true})

	service := NewSyncService(
		s.registry, s.streams, s.streamConns, s.items, s.directory, nil,
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})),
		config.SyncConfig{ConnectionTimeout: time.Minute},
	)
	service.now = func() time.Time { return s.now }

	s.expectStreamLoad()
	s.items.EXPECT().CountPublishedByProvider(gomock.Any(), int64(1), domain.ProviderTwitter).Return(0, nil)
	s.items.EXPECT().UpsertIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)
	s.streamConns.EXPECT().AdvanceWatermark(gomock.Any(), int64(5), s.now).Return(nil)

	stats, err := service.RunSync(context.Background(), 1)

	s.NoError(err)
	s.Equal(1, stats.Connections[0].Stored)
}

func (s *SyncServiceTestSuite) TestListFeed_ReturnsNewestFirst() {
	s.streams.EXPECT().Get(gomock.Any(), int64(1)).Return(s.stream, nil)
	s.items.EXPECT().ListFeed(gomock.Any(), int64(1)).Return([]domain.ActivityItem{
		{SourceID: "c", Date: s.now},
		{SourceID: "b", Date: s.now.Add(-time.Hour)},
		{SourceID: "a", Date: s.now.Add(-2 * time.Hour)},
	}, nil)

	feed, err := s.service.ListFeed(context.Background(), 1)

	s.NoError(err)
	s.Require().Len(feed, 3)
	s.Equal("c", feed[0].SourceID)
	s.Equal("a", feed[2].SourceID)
}

func (s *SyncServiceTestSuite) TestListFeed_UnpublishedStreamReadsEmpty() {
	s.stream.IsPublished = false
	s.streams.EXPECT().Get(gomock.Any(), int64(1)).Return(s.stream, nil)

	feed, err := s.service.ListFeed(context.Background(), 1)

	s.NoError(err)
	s.Empty(feed)
}

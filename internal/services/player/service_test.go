package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/kweston/matchrank/internal/dependencies/mocks"
	"github.com/kweston/matchrank/internal/model"
	"github.com/kweston/matchrank/internal/storage/memory"
	"github.com/kweston/matchrank/internal/testutil"
)

// recordingRosterSync captures SyncMember calls for assertions
type recordingRosterSync struct {
	teamIDs []model.TeamID
	players []model.Player
}

func (r *recordingRosterSync) SyncMember(ctx context.Context, teamID model.TeamID, player model.Player) error {
	r.teamIDs = append(r.teamIDs, teamID)
	r.players = append(r.players, player)
	return nil
}

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	sync    *recordingRosterSync
	svc     *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.sync = &recordingRosterSync{}
	s.svc = New(s.storage, s.clock, s.random, testutil.NopLogger())
	s.svc.SetRosterSync(s.sync)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreate() {
	s.random.QueueString("PLAYERID0001")

	p, err := s.svc.Create(s.ctx, CreateParams{
		Nickname:         "ace",
		Rating:           1000,
		HoursPlayed:      100,
		RatingAdjustment: model.DefaultRatingAdjustment,
	})
	s.Require().NoError(err)

	s.Equal(model.PlayerID("PLAYERID0001"), p.ID)
	s.Equal("ace", p.Nickname)
	s.Equal(0, p.Wins)
	s.Equal(0, p.Losses)
	s.Equal(float64(1000), p.Rating)
	s.Equal(100, p.HoursPlayed)
	s.Nil(p.Team)
	s.Equal(50, p.RatingAdjustment)
	s.Equal(s.clock.CurrentTime, p.CreatedAt)
	s.Equal(s.clock.CurrentTime, p.UpdatedAt)

	stored, err := s.storage.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p, stored)
}

func (s *ServiceSuite) TestCreateDuplicateNickname() {
	_, err := s.svc.Create(s.ctx, CreateParams{Nickname: "ace", Rating: 1000})
	s.Require().NoError(err)

	_, err = s.svc.Create(s.ctx, CreateParams{Nickname: "ace", Rating: 1200})
	s.ErrorIs(err, model.ErrDuplicateNickname)
}

func (s *ServiceSuite) TestCreateNicknameCaseSensitive() {
	_, err := s.svc.Create(s.ctx, CreateParams{Nickname: "ace"})
	s.Require().NoError(err)

	p, err := s.svc.Create(s.ctx, CreateParams{Nickname: "Ace"})
	s.Require().NoError(err)
	s.Equal("Ace", p.Nickname)
}

func (s *ServiceSuite) TestCreateRetriesOnIDCollision() {
	s.random.QueueString("SAMEID000001")
	first, err := s.svc.Create(s.ctx, CreateParams{Nickname: "ace"})
	s.Require().NoError(err)
	s.Equal(model.PlayerID("SAMEID000001"), first.ID)

	// Generator yields a taken ID first, then a fresh one
	s.random.QueueString("SAMEID000001", "FRESHID00001")
	second, err := s.svc.Create(s.ctx, CreateParams{Nickname: "bolt"})
	s.Require().NoError(err)
	s.Equal(model.PlayerID("FRESHID00001"), second.ID)
}

func (s *ServiceSuite) TestGetNotFound() {
	_, err := s.svc.Get(s.ctx, "MISSING00000")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestListEmpty() {
	players, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *ServiceSuite) TestList() {
	_, err := s.svc.Create(s.ctx, CreateParams{Nickname: "ace"})
	s.Require().NoError(err)
	_, err = s.svc.Create(s.ctx, CreateParams{Nickname: "bolt"})
	s.Require().NoError(err)

	players, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)

	nicknames := []string{players[0].Nickname, players[1].Nickname}
	s.ElementsMatch([]string{"ace", "bolt"}, nicknames)
}

func (s *ServiceSuite) TestReplace() {
	p, err := s.svc.Create(s.ctx, CreateParams{Nickname: "ace", Rating: 1000})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	p.Rating = 1032
	p.Wins = 1
	p.HoursPlayed = 102
	s.Require().NoError(s.svc.Replace(s.ctx, p))

	stored, err := s.svc.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(float64(1032), stored.Rating)
	s.Equal(1, stored.Wins)
	s.Equal(102, stored.HoursPlayed)
	s.Equal(s.clock.CurrentTime, stored.UpdatedAt)
	s.True(stored.CreatedAt.Before(stored.UpdatedAt))
}

func (s *ServiceSuite) TestReplaceUnassignedDoesNotSync() {
	p, err := s.svc.Create(s.ctx, CreateParams{Nickname: "ace"})
	s.Require().NoError(err)

	p.Rating = 1100
	s.Require().NoError(s.svc.Replace(s.ctx, p))

	s.Empty(s.sync.teamIDs)
}

func (s *ServiceSuite) TestReplaceAssignedSyncsRoster() {
	p, err := s.svc.Create(s.ctx, CreateParams{Nickname: "ace"})
	s.Require().NoError(err)

	teamID := model.TeamID("TEAMID000001")
	p.Team = &teamID
	s.Require().NoError(s.svc.Replace(s.ctx, p))

	s.Require().Len(s.sync.teamIDs, 1)
	s.Equal(teamID, s.sync.teamIDs[0])
	s.Equal(p.ID, s.sync.players[0].ID)
}

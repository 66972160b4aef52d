package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kweston/matchrank/internal/api/apierr"
	"github.com/kweston/matchrank/internal/api/response"
	"github.com/kweston/matchrank/internal/factory"
	"github.com/kweston/matchrank/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	router := NewRouter(RouterConfig{
		Logger:        testutil.NopLogger(),
		PlayerService: s.app.PlayerService,
		TeamService:   s.app.TeamService,
		MatchEngine:   s.app.MatchEngine,
	})
	s.server = httptest.NewServer(router)
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
}

// do sends a JSON request and decodes the JSON response into out (when
// out is non-nil), returning the status code.
func (s *APISuite) do(method, path string, body any, out any) int {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *APISuite) createPlayer(nickname string, rating float64, hours int) response.Player {
	var p response.Player
	status := s.do(http.MethodPost, "/api/v1/players", map[string]any{
		"nickname":     nickname,
		"rating":       rating,
		"hours_played": hours,
	}, &p)
	s.Require().Equal(http.StatusCreated, status)
	return p
}

func (s *APISuite) createTeam(name string, ratings []float64, hours int) response.Team {
	ids := make([]string, 0, len(ratings))
	for i, r := range ratings {
		p := s.createPlayer(fmt.Sprintf("%s-%d", name, i), r, hours)
		ids = append(ids, p.ID)
	}

	var t response.Team
	status := s.do(http.MethodPost, "/api/v1/teams", map[string]any{
		"team_name":  name,
		"player_ids": ids,
	}, &t)
	s.Require().Equal(http.StatusCreated, status)
	return t
}

func uniform(r float64) []float64 {
	return []float64{r, r, r, r, r}
}

func (s *APISuite) TestHealth() {
	var result map[string]string
	status := s.do(http.MethodGet, "/api/v1/health", nil, &result)
	s.Equal(http.StatusOK, status)
	s.Equal("ok", result["status"])
}

// Player endpoints

func (s *APISuite) TestCreatePlayer() {
	var p response.Player
	status := s.do(http.MethodPost, "/api/v1/players", map[string]any{
		"nickname":     "ace",
		"rating":       1000,
		"hours_played": 100,
	}, &p)
	s.Equal(http.StatusCreated, status)

	s.NotEmpty(p.ID)
	s.Equal("ace", p.Nickname)
	s.Equal(float64(1000), p.Rating)
	s.Equal(100, p.HoursPlayed)
	s.Equal(0, p.Wins)
	s.Equal(0, p.Losses)
	s.Nil(p.Team)
	s.Equal(50, p.RatingAdjustment)
}

func (s *APISuite) TestCreatePlayerMissingNickname() {
	var errResp apierr.ErrorResponse
	status := s.do(http.MethodPost, "/api/v1/players", map[string]any{"rating": 1000}, &errResp)
	s.Equal(http.StatusBadRequest, status)
	s.Equal(apierr.CodeInvalidRequest, errResp.Error.Code)
}

func (s *APISuite) TestCreatePlayerDuplicateNickname() {
	s.createPlayer("ace", 1000, 0)

	var errResp apierr.ErrorResponse
	status := s.do(http.MethodPost, "/api/v1/players", map[string]any{"nickname": "ace"}, &errResp)
	s.Equal(http.StatusConflict, status)
	s.Equal(apierr.CodeDuplicateNickname, errResp.Error.Code)
}

func (s *APISuite) TestGetPlayerNotFound() {
	var errResp apierr.ErrorResponse
	status := s.do(http.MethodGet, "/api/v1/players/MISSING00000", nil, &errResp)
	s.Equal(http.StatusNotFound, status)
	s.Equal(apierr.CodePlayerNotFound, errResp.Error.Code)
}

func (s *APISuite) TestListPlayers() {
	var empty response.PlayerList
	status := s.do(http.MethodGet, "/api/v1/players", nil, &empty)
	s.Equal(http.StatusOK, status)
	s.NotNil(empty.Players)
	s.Empty(empty.Players)

	s.createPlayer("ace", 1000, 0)
	s.createPlayer("bolt", 1100, 0)

	var list response.PlayerList
	status = s.do(http.MethodGet, "/api/v1/players", nil, &list)
	s.Equal(http.StatusOK, status)
	s.Len(list.Players, 2)
}

// Team endpoints

func (s *APISuite) TestCreateTeam() {
	team := s.createTeam("alpha", uniform(1000), 100)

	s.NotEmpty(team.ID)
	s.Equal("alpha", team.TeamName)
	s.Len(team.Players, 5)
	for _, member := range team.Players {
		s.Require().NotNil(member.Team)
		s.Equal(team.ID, *member.Team)
	}

	// Membership shows on the canonical player records too
	var p response.Player
	status := s.do(http.MethodGet, "/api/v1/players/"+team.Players[0].ID, nil, &p)
	s.Equal(http.StatusOK, status)
	s.Require().NotNil(p.Team)
	s.Equal(team.ID, *p.Team)
}

func (s *APISuite) TestCreateTeamWrongSize() {
	p := s.createPlayer("ace", 1000, 0)

	var errResp apierr.ErrorResponse
	status := s.do(http.MethodPost, "/api/v1/teams", map[string]any{
		"team_name":  "alpha",
		"player_ids": []string{p.ID},
	}, &errResp)
	s.Equal(http.StatusBadRequest, status)
	s.Equal(apierr.CodeInvalidTeamSize, errResp.Error.Code)
}

func (s *APISuite) TestCreateTeamDuplicateName() {
	s.createTeam("alpha", uniform(1000), 100)

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, s.createPlayer(fmt.Sprintf("fresh-%d", i), 1000, 0).ID)
	}

	var errResp apierr.ErrorResponse
	status := s.do(http.MethodPost, "/api/v1/teams", map[string]any{
		"team_name":  "alpha",
		"player_ids": ids,
	}, &errResp)
	s.Equal(http.StatusConflict, status)
	s.Equal(apierr.CodeDuplicateTeamName, errResp.Error.Code)
}

func (s *APISuite) TestCreateTeamPlayerAlreadyAssigned() {
	taken := s.createTeam("alpha", uniform(1000), 100)

	ids := []string{taken.Players[0].ID}
	for i := 0; i < 4; i++ {
		ids = append(ids, s.createPlayer(fmt.Sprintf("fresh-%d", i), 1000, 0).ID)
	}

	var errResp apierr.ErrorResponse
	status := s.do(http.MethodPost, "/api/v1/teams", map[string]any{
		"team_name":  "bravo",
		"player_ids": ids,
	}, &errResp)
	s.Equal(http.StatusConflict, status)
	s.Equal(apierr.CodePlayerAlreadyAssigned, errResp.Error.Code)
}

func (s *APISuite) TestGetTeamNotFound() {
	var errResp apierr.ErrorResponse
	status := s.do(http.MethodGet, "/api/v1/teams/MISSING00000", nil, &errResp)
	s.Equal(http.StatusNotFound, status)
	s.Equal(apierr.CodeTeamNotFound, errResp.Error.Code)
}

// Match endpoints

func (s *APISuite) TestCreateDecisiveMatch() {
	team1 := s.createTeam("alpha", uniform(1000), 100)
	team2 := s.createTeam("bravo", uniform(1100), 200)

	var m response.Match
	status := s.do(http.MethodPost, "/api/v1/matches", map[string]any{
		"team1_id":        team1.ID,
		"team2_id":        team2.ID,
		"winning_team_id": team1.ID,
		"duration":        2,
	}, &m)
	s.Equal(http.StatusCreated, status)

	s.NotEmpty(m.ID)
	s.Equal(team1.ID, m.Team1ID)
	s.Equal(team2.ID, m.Team2ID)
	s.Require().NotNil(m.WinningTeamID)
	s.Equal(team1.ID, *m.WinningTeamID)
	s.Equal(2, m.Duration)

	// Winners gained 32 points and the win, losers mirror it
	var p response.Player
	s.do(http.MethodGet, "/api/v1/players/"+team1.Players[0].ID, nil, &p)
	s.Equal(float64(1032), p.Rating)
	s.Equal(102, p.HoursPlayed)
	s.Equal(1, p.Wins)

	s.do(http.MethodGet, "/api/v1/players/"+team2.Players[0].ID, nil, &p)
	s.Equal(float64(1068), p.Rating)
	s.Equal(202, p.HoursPlayed)
	s.Equal(1, p.Losses)
}

func (s *APISuite) TestCreateDrawMatch() {
	team1 := s.createTeam("alpha", uniform(1000), 100)
	team2 := s.createTeam("bravo", uniform(1000), 100)

	var m response.Match
	status := s.do(http.MethodPost, "/api/v1/matches", map[string]any{
		"team1_id": team1.ID,
		"team2_id": team2.ID,
		"duration": 3,
	}, &m)
	s.Equal(http.StatusCreated, status)
	s.Nil(m.WinningTeamID)

	var p response.Player
	s.do(http.MethodGet, "/api/v1/players/"+team1.Players[0].ID, nil, &p)
	s.Equal(float64(1000), p.Rating)
	s.Equal(103, p.HoursPlayed)
}

func (s *APISuite) TestCreateMatchInvalidDuration() {
	team1 := s.createTeam("alpha", uniform(1000), 100)
	team2 := s.createTeam("bravo", uniform(1000), 100)

	var errResp apierr.ErrorResponse
	status := s.do(http.MethodPost, "/api/v1/matches", map[string]any{
		"team1_id": team1.ID,
		"team2_id": team2.ID,
		"duration": 0,
	}, &errResp)
	s.Equal(http.StatusBadRequest, status)
	s.Equal(apierr.CodeInvalidDuration, errResp.Error.Code)
}

func (s *APISuite) TestCreateMatchInvalidWinner() {
	team1 := s.createTeam("alpha", uniform(1000), 100)
	team2 := s.createTeam("bravo", uniform(1000), 100)
	outsider := s.createTeam("charlie", uniform(1000), 100)

	var errResp apierr.ErrorResponse
	status := s.do(http.MethodPost, "/api/v1/matches", map[string]any{
		"team1_id":        team1.ID,
		"team2_id":        team2.ID,
		"winning_team_id": outsider.ID,
		"duration":        1,
	}, &errResp)
	s.Equal(http.StatusBadRequest, status)
	s.Equal(apierr.CodeInvalidWinningTeam, errResp.Error.Code)
}

func (s *APISuite) TestCreateMatchSameTeam() {
	team1 := s.createTeam("alpha", uniform(1000), 100)

	var errResp apierr.ErrorResponse
	status := s.do(http.MethodPost, "/api/v1/matches", map[string]any{
		"team1_id": team1.ID,
		"team2_id": team1.ID,
		"duration": 1,
	}, &errResp)
	s.Equal(http.StatusBadRequest, status)
	s.Equal(apierr.CodeInvalidMatchup, errResp.Error.Code)
}

func (s *APISuite) TestGetMatch() {
	team1 := s.createTeam("alpha", uniform(1000), 100)
	team2 := s.createTeam("bravo", uniform(1000), 100)

	var created response.Match
	status := s.do(http.MethodPost, "/api/v1/matches", map[string]any{
		"team1_id": team1.ID,
		"team2_id": team2.ID,
		"duration": 1,
	}, &created)
	s.Require().Equal(http.StatusCreated, status)

	var got response.Match
	status = s.do(http.MethodGet, "/api/v1/matches/"+created.ID, nil, &got)
	s.Equal(http.StatusOK, status)
	s.Equal(created, got)
}

func (s *APISuite) TestGetMatchNotFound() {
	var errResp apierr.ErrorResponse
	status := s.do(http.MethodGet, "/api/v1/matches/MISSING00000", nil, &errResp)
	s.Equal(http.StatusNotFound, status)
	s.Equal(apierr.CodeMatchNotFound, errResp.Error.Code)
}

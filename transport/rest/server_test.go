package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	mockedRest "github.com/rocketscienceinc/tictactoe-engine/mocks/rest"
)

const threatBoardJSON = `["X","X","","","O","","","",""]`

var threatBoard = entity.Board{
	entity.PlayerX, entity.PlayerX, entity.EmptyCell,
	entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
	entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
}

func newTestServer(t *testing.T) (*Server, *mockedRest.MockengineUseCase) {
	t.Helper()

	engine := mockedRest.NewMockengineUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(logger, engine, entity.HardDifficulty), engine
}

func doRequest(server *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value))

	return value
}

func TestPing(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(server, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestEvaluateHandler(t *testing.T) {
	t.Run("Returns the outcome", func(t *testing.T) {
		// Given: the engine reports a win
		server, engine := newTestServer(t)
		outcome := entity.WinOutcome(entity.PlayerX, entity.Line{0, 1, 2})
		engine.EXPECT().Evaluate(mock.Anything, threatBoard).Return(outcome, nil)

		// When: posting the board
		rec := doRequest(server, http.MethodPost, "/api/v1/evaluate", `{"board":`+threatBoardJSON+`}`)

		// Then: the outcome is returned as JSON
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[outcomeResponse](t, rec)
		assert.Equal(t, outcome, resp.Outcome)
	})

	t.Run("Bad request on an invalid board", func(t *testing.T) {
		server, engine := newTestServer(t)
		engine.EXPECT().Evaluate(mock.Anything, mock.Anything).Return(entity.Outcome{}, apperror.ErrInvalidBoard)

		rec := doRequest(server, http.MethodPost, "/api/v1/evaluate", `{"board":["Z","","","","","","","",""]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Bad request on malformed JSON", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := doRequest(server, http.MethodPost, "/api/v1/evaluate", `{"board":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlaceHandler(t *testing.T) {
	t.Run("Returns the evicted cell in the bounded variant", func(t *testing.T) {
		// Given: the engine evicts cell 0
		server, engine := newTestServer(t)
		result := &usecase.PlaceResult{
			Board:   threatBoard,
			History: entity.MoveHistory{1, 4, 8},
			Evicted: 0,
			Outcome: entity.NoOutcome(),
		}
		engine.EXPECT().
			Place(mock.Anything, threatBoard, entity.BoundedVariant, entity.MoveHistory{0, 1, 4}, 8, entity.PlayerX).
			Return(result, nil)

		// When: posting the placement
		body := `{"board":` + threatBoardJSON + `,"index":8,"player":"X","variant":"bounded","history":[0,1,4]}`
		rec := doRequest(server, http.MethodPost, "/api/v1/place", body)

		// Then: the eviction is reported
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[placeResponse](t, rec)
		require.NotNil(t, resp.Evicted)
		assert.Equal(t, 0, *resp.Evicted)
		assert.Equal(t, entity.MoveHistory{1, 4, 8}, resp.History)
	})

	t.Run("Omits evicted when nothing vanished", func(t *testing.T) {
		server, engine := newTestServer(t)
		result := &usecase.PlaceResult{
			Board:   threatBoard,
			Evicted: tictactoe.NoEviction,
			Outcome: entity.WinOutcome(entity.PlayerX, entity.Line{0, 1, 2}),
		}
		engine.EXPECT().
			Place(mock.Anything, threatBoard, entity.ClassicVariant, entity.MoveHistory(nil), 2, entity.PlayerX).
			Return(result, nil)

		rec := doRequest(server, http.MethodPost, "/api/v1/place", `{"board":`+threatBoardJSON+`,"index":2,"player":"X"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "evicted")
		assert.True(t, decode[placeResponse](t, rec).Outcome.IsWin())
	})

	t.Run("Bad request without an index", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := doRequest(server, http.MethodPost, "/api/v1/place", `{"board":`+threatBoardJSON+`,"player":"X"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Bad request on an unknown variant", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := doRequest(server, http.MethodPost, "/api/v1/place", `{"board":`+threatBoardJSON+`,"index":2,"player":"X","variant":"gomoku"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Conflict when the game is over", func(t *testing.T) {
		server, engine := newTestServer(t)
		engine.EXPECT().
			Place(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperror.ErrGameFinished)

		rec := doRequest(server, http.MethodPost, "/api/v1/place", `{"board":`+threatBoardJSON+`,"index":2,"player":"X"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apperror.ErrGameFinished.Error(), decode[errorResponse](t, rec).Error)
	})
}

func TestMoveHandler(t *testing.T) {
	t.Run("Uses the default difficulty when none is given", func(t *testing.T) {
		// Given: the engine blocks at 2
		server, engine := newTestServer(t)
		state := entity.SearchState{Variant: entity.ClassicVariant, Player: entity.PlayerO}
		engine.EXPECT().ChooseMove(mock.Anything, threatBoard, entity.HardDifficulty, state).Return(2, nil)

		// When: asking for a move without a difficulty
		rec := doRequest(server, http.MethodPost, "/api/v1/move", `{"board":`+threatBoardJSON+`,"player":"O"}`)

		// Then: the chosen index is returned
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, decode[moveResponse](t, rec).Index)
	})

	t.Run("Passes the bounded histories through", func(t *testing.T) {
		server, engine := newTestServer(t)
		state := entity.SearchState{
			Variant:  entity.BoundedVariant,
			Player:   entity.PlayerO,
			XHistory: entity.MoveHistory{0, 1},
			OHistory: entity.MoveHistory{4},
		}
		engine.EXPECT().ChooseMove(mock.Anything, threatBoard, entity.EasyDifficulty, state).Return(6, nil)

		body := `{"board":` + threatBoardJSON + `,"difficulty":"easy","variant":"bounded","player":"O","x_history":[0,1],"o_history":[4]}`
		rec := doRequest(server, http.MethodPost, "/api/v1/move", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 6, decode[moveResponse](t, rec).Index)
	})

	t.Run("Bad request on an unknown difficulty", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := doRequest(server, http.MethodPost, "/api/v1/move", `{"board":`+threatBoardJSON+`,"difficulty":"nightmare"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Conflict on a full board", func(t *testing.T) {
		server, engine := newTestServer(t)
		engine.EXPECT().
			ChooseMove(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(tictactoe.NoMove, apperror.ErrNoAvailableMoves)

		rec := doRequest(server, http.MethodPost, "/api/v1/move", `{"board":["X","O","X","X","O","O","O","X","X"]}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Internal error hides the cause", func(t *testing.T) {
		server, engine := newTestServer(t)
		engine.EXPECT().
			ChooseMove(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(tictactoe.NoMove, errors.New("redis: connection refused"))

		rec := doRequest(server, http.MethodPost, "/api/v1/move", `{"board":`+threatBoardJSON+`}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "redis")
	})
}

func TestCommentaryHandler(t *testing.T) {
	t.Run("Defaults to no engine mark", func(t *testing.T) {
		server, engine := newTestServer(t)
		engine.EXPECT().Comment(mock.Anything, threatBoard, entity.EmptyCell).Return("Nice opening!", nil)

		rec := doRequest(server, http.MethodPost, "/api/v1/commentary", `{"board":`+threatBoardJSON+`}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Nice opening!", decode[commentaryResponse](t, rec).Commentary)
	})

	t.Run("Passes the engine's mark through", func(t *testing.T) {
		server, engine := newTestServer(t)
		engine.EXPECT().Comment(mock.Anything, threatBoard, entity.PlayerX).Return("My row now.", nil)

		rec := doRequest(server, http.MethodPost, "/api/v1/commentary", `{"board":`+threatBoardJSON+`,"player":"X"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "My row now.", decode[commentaryResponse](t, rec).Commentary)
	})
}

func TestBoardSize(t *testing.T) {
	cases := map[string]string{
		"two cells":    `{"board":["X","X"]}`,
		"twelve cells": `{"board":["X","X","","","O","","","","","O","O","O"]}`,
		"no cells":     `{"board":[]}`,
		"null board":   `{"board":null}`,
		"no board":     `{"player":"O"}`,
	}
	paths := []string{"/api/v1/evaluate", "/api/v1/place", "/api/v1/move", "/api/v1/commentary"}

	for name, body := range cases {
		for _, path := range paths {
			t.Run(name+" on "+path, func(t *testing.T) {
				// Given: an engine that must never be reached
				server, _ := newTestServer(t)

				// When: posting a board that is not nine cells
				rec := doRequest(server, http.MethodPost, path, body)

				// Then: the request is rejected as an invalid board
				require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
				assert.Contains(t, decode[errorResponse](t, rec).Error, apperror.ErrInvalidBoard.Error())
			})
		}
	}
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, errorStatus(apperror.ErrIllegalMove))
	assert.Equal(t, http.StatusBadRequest, errorStatus(apperror.ErrInvalidHistory))
	assert.Equal(t, http.StatusConflict, errorStatus(apperror.ErrNoAvailableMoves))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(errors.New("boom")))
}

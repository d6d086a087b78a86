package rest

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// boardRequest is a request body that carries a board.
type boardRequest interface {
	board() *entity.Board
}

type evaluateRequest struct {
	Board *entity.Board `json:"board"`
}

func (that *evaluateRequest) board() *entity.Board { return that.Board }

type outcomeResponse struct {
	Outcome entity.Outcome `json:"outcome"`
}

type placeRequest struct {
	Board   *entity.Board      `json:"board"`
	Index   *int               `json:"index"`
	Player  entity.Cell        `json:"player"`
	Variant string             `json:"variant"`
	History entity.MoveHistory `json:"history,omitempty"`
}

func (that *placeRequest) board() *entity.Board { return that.Board }

type placeResponse struct {
	Board   entity.Board       `json:"board"`
	History entity.MoveHistory `json:"history,omitempty"`
	Evicted *int               `json:"evicted,omitempty"`
	Outcome entity.Outcome     `json:"outcome"`
}

type moveRequest struct {
	Board      *entity.Board      `json:"board"`
	Difficulty string             `json:"difficulty"`
	Variant    string             `json:"variant"`
	Player     entity.Cell        `json:"player"`
	XHistory   entity.MoveHistory `json:"x_history,omitempty"`
	OHistory   entity.MoveHistory `json:"o_history,omitempty"`
}

func (that *moveRequest) board() *entity.Board { return that.Board }

type moveResponse struct {
	Index int `json:"index"`
}

type commentaryRequest struct {
	Board  *entity.Board `json:"board"`
	Player entity.Cell   `json:"player"`
}

func (that *commentaryRequest) board() *entity.Board { return that.Board }

type commentaryResponse struct {
	Commentary string `json:"commentary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

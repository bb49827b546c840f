package http_game

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/stopbus/core/internal/delivery/http/common"
	"github.com/humanbelnik/stopbus/core/internal/model"
	service_roomlock "github.com/humanbelnik/stopbus/core/internal/service/roomlock"
	usecase_game "github.com/humanbelnik/stopbus/core/internal/usecase/game"
)

type Controller struct {
	usecase *usecase_game.Usecase
	locks   *service_roomlock.Locker
	logger  *slog.Logger

	// Advisory round duration for clients; the engine keeps no clock and
	// relies on clients auto-submitting when their timer runs out.
	roundSeconds int
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithRoundSeconds(seconds int) ControllerOption {
	return func(c *Controller) {
		c.roundSeconds = seconds
	}
}

func New(usecase *usecase_game.Usecase, locks *service_roomlock.Locker, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase:      usecase,
		locks:        locks,
		logger:       slog.Default(),
		roundSeconds: 60,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	game := router.Group("/game")
	{
		game.POST("", c.dispatch)
		game.GET("/rooms/:room_id", c.room)
		game.GET("/categories", c.categories)
		game.GET("/rules", c.rules)
	}
}

// ActionRequestDTO is the single dispatch envelope. Which params are
// required depends on the action.
type ActionRequestDTO struct {
	Action     string                `json:"action" binding:"required"`
	RoomID     string                `json:"roomId"`
	PlayerID   string                `json:"playerId"`
	PlayerName string                `json:"playerName"`
	Answers    model.CategoryAnswers `json:"answers"`
}

// GameResponseDTO is the uniform success/failure envelope every action
// replies with.
type GameResponseDTO struct {
	Success bool          `json:"success"`
	Room    *model.Room   `json:"room,omitempty"`
	Player  *model.Player `json:"player,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Dispatch runs one game action
// @Summary Game action dispatch
// @Description Accepts a discriminated action and routes it to the game engine
// @Tags Game
// @Accept json
// @Produce json
// @Param request body ActionRequestDTO true "Action and its parameters"
// @Success 200 {object} GameResponseDTO "Envelope; success=false carries a reason"
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Failure 500 {object} http_common.ErrorResponse "Storage failure"
// @Router /game [post]
func (c *Controller) dispatch(ctx *gin.Context) {
	var req ActionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "malformed request",
		})
		return
	}

	code := model.RoomCode(req.RoomID)

	switch req.Action {
	case "createRoom":
		c.createRoom(ctx, req)
	case "joinRoom":
		c.withLock(code, func() { c.joinRoom(ctx, req) })
	case "startGame":
		c.withLock(code, func() { c.startGame(ctx, req) })
	case "submitAnswers":
		c.withLock(code, func() { c.submitAnswers(ctx, req) })
	case "stopBus":
		c.withLock(code, func() { c.stopBus(ctx, req) })
	case "nextRound":
		c.withLock(code, func() { c.nextRound(ctx, req) })
	case "getRoom":
		c.getRoom(ctx, req)
	case "leaveRoom":
		c.withLock(code, func() { c.leaveRoom(ctx, req) })
	default:
		ctx.JSON(http.StatusOK, GameResponseDTO{
			Success: false,
			Error:   "invalid action",
		})
	}
}

// withLock serializes mutations per room code so racing last-submitters
// cannot lose the auto-end-round check. Last writer wins under the lock.
func (c *Controller) withLock(code model.RoomCode, fn func()) {
	if code == model.EmptyRoomCode {
		fn()
		return
	}
	c.locks.Lock(code)
	defer c.locks.Unlock(code)
	fn()
}

func (c *Controller) createRoom(ctx *gin.Context, req ActionRequestDTO) {
	room, host, err := c.usecase.CreateRoom(ctx, req.PlayerName)
	if err != nil {
		c.failure(ctx, model.EmptyRoomCode, err, "failed to create room", "unable to create room")
		return
	}

	ctx.JSON(http.StatusOK, GameResponseDTO{
		Success: true,
		Room:    &room,
		Player:  &host,
	})
}

func (c *Controller) joinRoom(ctx *gin.Context, req ActionRequestDTO) {
	code := model.RoomCode(req.RoomID)

	room, player, err := c.usecase.JoinRoom(ctx, code, req.PlayerName)
	if err != nil {
		c.failure(ctx, model.EmptyRoomCode, err, "failed to join room", "room not found or game already started")
		return
	}

	ctx.JSON(http.StatusOK, GameResponseDTO{
		Success: true,
		Room:    &room,
		Player:  &player,
	})
}

func (c *Controller) startGame(ctx *gin.Context, req ActionRequestDTO) {
	code := model.RoomCode(req.RoomID)

	room, err := c.usecase.StartGame(ctx, code)
	if err != nil {
		c.failure(ctx, code, err, "failed to start game", "room not found or not enough players")
		return
	}

	ctx.JSON(http.StatusOK, GameResponseDTO{
		Success: true,
		Room:    &room,
	})
}

func (c *Controller) submitAnswers(ctx *gin.Context, req ActionRequestDTO) {
	code := model.RoomCode(req.RoomID)

	room, err := c.usecase.SubmitAnswers(ctx, code, req.PlayerID, req.Answers)
	if err != nil {
		c.failure(ctx, code, err, "failed to submit answers", "submission rejected")
		return
	}

	ctx.JSON(http.StatusOK, GameResponseDTO{
		Success: true,
		Room:    &room,
	})
}

func (c *Controller) stopBus(ctx *gin.Context, req ActionRequestDTO) {
	code := model.RoomCode(req.RoomID)

	room, err := c.usecase.StopBus(ctx, code, req.PlayerID)
	if err != nil {
		c.failure(ctx, code, err, "failed to stop the bus", "submit your answers first")
		return
	}

	ctx.JSON(http.StatusOK, GameResponseDTO{
		Success: true,
		Room:    &room,
	})
}

func (c *Controller) nextRound(ctx *gin.Context, req ActionRequestDTO) {
	code := model.RoomCode(req.RoomID)

	room, err := c.usecase.NextRound(ctx, code)
	if err != nil {
		// Game completion is a signal, not misuse: the final room state
		// still goes out so clients can render the game-end screen.
		if errors.Is(err, usecase_game.ErrGameOver) {
			ctx.JSON(http.StatusOK, GameResponseDTO{
				Success: false,
				Room:    &room,
				Error:   "game over",
			})
			return
		}
		c.failure(ctx, code, err, "failed to advance round", "round is not over")
		return
	}

	ctx.JSON(http.StatusOK, GameResponseDTO{
		Success: true,
		Room:    &room,
	})
}

func (c *Controller) getRoom(ctx *gin.Context, req ActionRequestDTO) {
	c.respondWithRoom(ctx, model.RoomCode(req.RoomID))
}

func (c *Controller) leaveRoom(ctx *gin.Context, req ActionRequestDTO) {
	code := model.RoomCode(req.RoomID)

	if err := c.usecase.RemovePlayer(ctx, code, req.PlayerID); err != nil {
		c.failure(ctx, model.EmptyRoomCode, err, "failed to leave room", "unable to leave room")
		return
	}

	ctx.JSON(http.StatusOK, GameResponseDTO{
		Success: true,
	})
}

// Room returns a room snapshot
// @Summary Room snapshot
// @Description Idempotent read for polling clients; same envelope as the getRoom action
// @Tags Game
// @Param room_id path string true "Room code"
// @Success 200 {object} GameResponseDTO
// @Failure 500 {object} http_common.ErrorResponse "Storage failure"
// @Router /game/rooms/{room_id} [get]
func (c *Controller) room(ctx *gin.Context) {
	c.respondWithRoom(ctx, model.RoomCode(ctx.Param("room_id")))
}

func (c *Controller) respondWithRoom(ctx *gin.Context, code model.RoomCode) {
	room, err := c.usecase.Room(ctx, code)
	if err != nil {
		c.failure(ctx, model.EmptyRoomCode, err, "failed to get room", "room not found")
		return
	}

	ctx.JSON(http.StatusOK, GameResponseDTO{
		Success: true,
		Room:    &room,
	})
}

type CategoriesResponseDTO struct {
	Categories []string          `json:"categories"`
	Labels     map[string]string `json:"labels"`
}

// Categories returns the fixed category schema
// @Summary Category schema
// @Tags Game
// @Success 200 {object} CategoriesResponseDTO
// @Router /game/categories [get]
func (c *Controller) categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, CategoriesResponseDTO{
		Categories: model.Categories,
		Labels:     model.CategoryLabels,
	})
}

type RulesResponseDTO struct {
	TotalRounds  int      `json:"totalRounds"`
	RoundSeconds int      `json:"roundSeconds"`
	Letters      []string `json:"letters"`
}

// Rules returns the fixed game parameters
// @Summary Game rules
// @Description Round count, advisory round duration and the letter alphabet
// @Tags Game
// @Success 200 {object} RulesResponseDTO
// @Router /game/rules [get]
func (c *Controller) rules(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, RulesResponseDTO{
		TotalRounds:  model.DefaultTotalRounds,
		RoundSeconds: c.roundSeconds,
		Letters:      model.Letters,
	})
}

// failure translates engine errors into the uniform envelope. Expected
// misuse stays HTTP 200 with success=false; only storage failures surface
// as a generic server error. When the room code is known the current
// snapshot is attached so clients can resync.
func (c *Controller) failure(ctx *gin.Context, code model.RoomCode, err error, logMsg, reason string) {
	if errors.Is(err, usecase_game.ErrInternal) || errors.Is(err, usecase_game.ErrRoomsUnavailable) {
		c.logger.Error(logMsg, slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "server error",
		})
		return
	}

	resp := GameResponseDTO{
		Success: false,
		Error:   reason,
	}
	if code != model.EmptyRoomCode {
		if room, roomErr := c.usecase.Room(ctx, code); roomErr == nil {
			resp.Room = &room
		}
	}
	ctx.JSON(http.StatusOK, resp)
}

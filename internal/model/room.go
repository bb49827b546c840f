package model

type RoomCode string

const EmptyRoomCode RoomCode = ""

// RoomCodeAlphabet is the character set room codes are drawn from.
const RoomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const RoomCodeLen = 6

type GameState string

const (
	StateWaiting  GameState = "waiting"
	StatePlaying  GameState = "playing"
	StateRoundEnd GameState = "roundEnd"
	StateGameEnd  GameState = "gameEnd"
)

const DefaultTotalRounds = 5

// Letters is the round-letter alphabet. Q and X are left out on purpose:
// too few valid answers exist for them in most categories.
var Letters = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
	"M", "N", "O", "P", "R", "S", "T", "U", "V", "W", "Y", "Z",
}

type Player struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Answers      CategoryAnswers `json:"answers"`
	HasSubmitted bool            `json:"hasSubmitted"`
	Score        int             `json:"score"`
}

// Room is the whole persisted game state. It round-trips through JSON
// losslessly; the store keeps it as an opaque serialized value.
type Room struct {
	Code          RoomCode         `json:"id"`
	Players       []Player         `json:"players"`
	CurrentLetter string           `json:"currentLetter"`
	GameState     GameState        `json:"gameState"`
	CurrentRound  int              `json:"currentRound"`
	TotalRounds   int              `json:"totalRounds"`
	UsedLetters   []string         `json:"usedLetters"`
	RoundScores   map[string][]int `json:"roundScores"`
	Host          string           `json:"host"`
}

// PlayerIndex returns the position of the player with the given id,
// or -1 when the player is not in the room.
func (r *Room) PlayerIndex(playerID string) int {
	for i := range r.Players {
		if r.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

func (r *Room) AllSubmitted() bool {
	for i := range r.Players {
		if !r.Players[i].HasSubmitted {
			return false
		}
	}
	return true
}

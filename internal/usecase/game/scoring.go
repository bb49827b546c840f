package usecase_game

import (
	"strings"

	"github.com/humanbelnik/stopbus/core/internal/model"
)

const (
	uniqueAnswerPoints    = 10
	duplicateAnswerPoints = 5
)

// endRound freezes the current set of players, scores the round and moves
// the room to roundEnd. Players who left mid-round simply do not appear in
// the iteration and keep whatever score history they had.
func endRound(room *model.Room) {
	scores := roundScores(room)

	for i := range room.Players {
		p := &room.Players[i]
		score := scores[p.ID]
		p.Score += score
		room.RoundScores[p.ID] = append(room.RoundScores[p.ID], score)
	}

	room.GameState = model.StateRoundEnd
}

// roundScores runs the duplicate-detection scoring over every player and
// category. Quadratic in players, which is fine at party-game scale.
func roundScores(room *model.Room) map[string]int {
	scores := make(map[string]int, len(room.Players))
	letter := strings.ToLower(room.CurrentLetter)

	for i := range room.Players {
		player := &room.Players[i]
		answers := player.Answers.ByCategory()
		score := 0

		for _, category := range model.Categories {
			answer := normalize(answers[category])
			if !qualifies(answer, letter) {
				continue
			}

			if sharedByOther(room, player.ID, category, answer) {
				score += duplicateAnswerPoints
			} else {
				score += uniqueAnswerPoints
			}
		}

		scores[player.ID] = score
	}

	return scores
}

// sharedByOther reports whether any other player gave the same normalized
// answer in the same category. Every holder of a shared value gets the
// duplicate award, not just the later submitter.
func sharedByOther(room *model.Room, playerID, category, answer string) bool {
	for i := range room.Players {
		other := &room.Players[i]
		if other.ID == playerID {
			continue
		}
		if normalize(other.Answers.ByCategory()[category]) == answer {
			return true
		}
	}
	return false
}

func normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func qualifies(normalized, letter string) bool {
	return normalized != "" && letter != "" && strings.HasPrefix(normalized, letter)
}

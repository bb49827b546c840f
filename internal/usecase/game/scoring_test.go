package usecase_game

import (
	"testing"

	"github.com/humanbelnik/stopbus/core/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRoundScores(t *testing.T) {
	testCases := []struct {
		name     string
		letter   string
		answers  map[string]model.CategoryAnswers
		expected map[string]int
	}{
		{
			name:   "unique qualifying answers score ten each",
			letter: "C",
			answers: map[string]model.CategoryAnswers{
				"alice": {Animal: "Cat", Country: "Canada"},
				"bob":   {Animal: "Cow", Country: "Chile"},
			},
			expected: map[string]int{"alice": 20, "bob": 20},
		},
		{
			name:   "shared answers score five for every holder",
			letter: "C",
			answers: map[string]model.CategoryAnswers{
				"alice": {Animal: "Cat"},
				"bob":   {Animal: " cat "},
				"carol": {Animal: "CAT"},
			},
			expected: map[string]int{"alice": 5, "bob": 5, "carol": 5},
		},
		{
			name:   "wrong letter and empty answers score zero",
			letter: "C",
			answers: map[string]model.CategoryAnswers{
				"alice": {Animal: "Dog", Food: ""},
				"bob":   {Animal: "Cat"},
			},
			expected: map[string]int{"alice": 0, "bob": 10},
		},
		{
			name:   "letter comparison is case insensitive",
			letter: "C",
			answers: map[string]model.CategoryAnswers{
				"alice": {Food: "cheese"},
				"bob":   {Food: "Cake"},
			},
			expected: map[string]int{"alice": 10, "bob": 10},
		},
		{
			name:   "categories sum independently",
			letter: "B",
			answers: map[string]model.CategoryAnswers{
				"alice": {Boy: "Ben", Food: "Bread", Animal: "Bear"},
				"bob":   {Boy: "Ben", Food: "Banana", Animal: "Bison"},
			},
			// Ben shared (5) + two uniques (20)
			expected: map[string]int{"alice": 25, "bob": 25},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			room := model.Room{
				CurrentLetter: tc.letter,
				GameState:     model.StatePlaying,
			}
			for id, answers := range tc.answers {
				room.Players = append(room.Players, model.Player{
					ID:      id,
					Name:    id,
					Answers: answers,
				})
			}

			scores := roundScores(&room)

			for id, want := range tc.expected {
				assert.Equal(t, want, scores[id], "player %s", id)
			}
		})
	}
}

func TestEndRoundAccumulates(t *testing.T) {
	room := model.Room{
		CurrentLetter: "C",
		GameState:     model.StatePlaying,
		RoundScores:   map[string][]int{"alice": {10}, "bob": {0}},
		Players: []model.Player{
			{ID: "alice", Score: 10, Answers: model.CategoryAnswers{Animal: "Cat"}},
			{ID: "bob", Score: 0, Answers: model.CategoryAnswers{Animal: "Cat"}},
		},
	}

	endRound(&room)

	assert.Equal(t, model.StateRoundEnd, room.GameState)
	assert.Equal(t, 15, room.Players[0].Score)
	assert.Equal(t, 5, room.Players[1].Score)
	assert.Equal(t, []int{10, 5}, room.RoundScores["alice"])
	assert.Equal(t, []int{0, 5}, room.RoundScores["bob"])
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cat", normalize("  Cat "))
	assert.Equal(t, "", normalize("   "))
}

func TestQualifies(t *testing.T) {
	assert.True(t, qualifies("cat", "c"))
	assert.False(t, qualifies("dog", "c"))
	assert.False(t, qualifies("", "c"))
}

func TestDrawLetterExhaustsAlphabetBeforeRepeating(t *testing.T) {
	used := make([]string, 0, len(model.Letters))
	seen := map[string]bool{}

	for range model.Letters {
		letter := drawLetter(used)
		assert.False(t, seen[letter], "letter %s repeated before exhaustion", letter)
		seen[letter] = true
		used = append(used, letter)
	}

	// Alphabet spent; draws fall back to the full set
	letter := drawLetter(used)
	assert.Contains(t, model.Letters, letter)
}

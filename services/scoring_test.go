package services

import (
	"testing"

	"studybuddy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionSet(correct ...string) []models.Question {
	qs := make([]models.Question, len(correct))
	for i, c := range correct {
		qs[i] = models.Question{ID: uint(i + 1), CorrectAnswer: c}
	}
	return qs
}

func TestScoreAnswers(t *testing.T) {
	card, err := ScoreAnswers(questionSet("a", "b", "c"), map[string]string{
		"q1": "a",
		"q2": "b",
		"q3": "d",
	})
	require.NoError(t, err)

	assert.Equal(t, 66, card.Score)
	assert.Equal(t, 2, card.CorrectCount)
	assert.Equal(t, 3, card.TotalCount)
	require.Len(t, card.Answers, 3)
	for i, a := range card.Answers {
		assert.Equal(t, uint(i+1), a.QuestionID)
	}
	assert.True(t, card.Answers[0].IsCorrect)
	assert.False(t, card.Answers[2].IsCorrect)
	assert.Equal(t, "d", card.Answers[2].UserAnswer)
}

func TestScoreAnswers_Bounds(t *testing.T) {
	card, err := ScoreAnswers(questionSet("a", "b"), map[string]string{"q1": "a", "q2": "b", "q99": "e"})
	require.NoError(t, err)
	assert.Equal(t, 100, card.Score)

	card, err = ScoreAnswers(questionSet("a", "b"), map[string]string{"q1": "c", "q2": "c"})
	require.NoError(t, err)
	assert.Equal(t, 0, card.Score)

	// matching is exact
	card, err = ScoreAnswers(questionSet("a"), map[string]string{"q1": "A"})
	require.NoError(t, err)
	assert.Equal(t, 0, card.CorrectCount)
}

func TestScoreAnswers_Errors(t *testing.T) {
	_, err := ScoreAnswers(nil, map[string]string{"q1": "a"})
	assert.ErrorIs(t, err, ErrNoQuestions)

	_, err = ScoreAnswers(questionSet("a", "b", "c"), map[string]string{"q1": "a", "q3": "c"})
	var missing *MissingAnswerError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, uint(2), missing.QuestionID)
	assert.Equal(t, "missing answer for question 2", err.Error())

	_, err = ScoreAnswers(questionSet("a", "b"), map[string]string{"q1": "ab", "q2": "b"})
	var invalid *InvalidAnswerError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, uint(1), invalid.QuestionID)

	_, err = ScoreAnswers(questionSet("a"), map[string]string{"q1": ""})
	assert.ErrorAs(t, err, &invalid)
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(ErrNoQuestions))
	assert.True(t, IsInputError(&MissingAnswerError{QuestionID: 1}))
	assert.True(t, IsInputError(&InvalidAnswerError{QuestionID: 1}))
	assert.False(t, IsInputError(ErrNotFound))
}

package services

import (
	"strconv"
	"unicode/utf8"

	"studybuddy/models"
)

// Scorecard is the outcome of scoring one submission, before it is persisted.
type Scorecard struct {
	Score        int
	CorrectCount int
	TotalCount   int
	Answers      []models.Answer
}

// AnswerKey is the submission map key for a question: "q" followed by its id.
func AnswerKey(questionID uint) string {
	return "q" + strconv.FormatUint(uint64(questionID), 10)
}

// ScoreAnswers checks answers against questions in the order given. The score
// is the percentage of correct answers, truncated towards zero.
func ScoreAnswers(questions []models.Question, answers map[string]string) (*Scorecard, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	card := &Scorecard{
		TotalCount: len(questions),
		Answers:    make([]models.Answer, 0, len(questions)),
	}
	for _, q := range questions {
		submitted, ok := answers[AnswerKey(q.ID)]
		if !ok {
			return nil, &MissingAnswerError{QuestionID: q.ID}
		}
		if utf8.RuneCountInString(submitted) != 1 {
			return nil, &InvalidAnswerError{QuestionID: q.ID}
		}

		correct := submitted == q.CorrectAnswer
		if correct {
			card.CorrectCount++
		}
		card.Answers = append(card.Answers, models.Answer{
			QuestionID: q.ID,
			UserAnswer: submitted,
			IsCorrect:  correct,
		})
	}

	card.Score = card.CorrectCount * 100 / card.TotalCount
	return card, nil
}

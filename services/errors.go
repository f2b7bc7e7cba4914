package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentialFormat = errors.New("password must be at least 6 characters")
	ErrInvalidToken            = errors.New("invalid token")

	ErrMissingCredential     = errors.New("missing credential")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrUnknownIdentity       = errors.New("unknown identity")
	ErrInvalidLogin          = errors.New("incorrect email or password")

	ErrNotFound      = errors.New("not found")
	ErrUserExists    = errors.New("username or email already registered")
	ErrSummaryExists = errors.New("a summary is already registered for this day")

	ErrNoQuestions     = errors.New("this summary has no questions")
	ErrInvalidQuestion = errors.New("invalid question")
	ErrInvalidDate     = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidInput    = errors.New("invalid input")
)

// MissingAnswerError reports the first question of a submission without an answer.
type MissingAnswerError struct {
	QuestionID uint
}

func (e *MissingAnswerError) Error() string {
	return fmt.Sprintf("missing answer for question %d", e.QuestionID)
}

// InvalidAnswerError reports a submitted option that is not a single character.
type InvalidAnswerError struct {
	QuestionID uint
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer for question %d", e.QuestionID)
}

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

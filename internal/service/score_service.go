package service

import (
	"context"
	"fmt"

	errs "quizroom/internal/errors"
	"quizroom/internal/repository"
)

// Sequence status values returned by SubmitAnswer.
const (
	// StatusNext means more questions remain after the submitted one.
	StatusNext = "next"
	// StatusEnd means the submitted question was the last one.
	StatusEnd = "end"
)

// minTimeTakenMs is the floor applied to reported answer times. The award
// formula divides by the time taken, so a zero or negative report is clamped
// rather than rejected.
const minTimeTakenMs = 1

// SubmitAnswerInput carries one answer submission.
type SubmitAnswerInput struct {
	Code           string
	UserID         string
	QuestionNumber int
	Chosen         string
	Correct        string
	BasePoint      int
	TimeTakenMs    int
}

// SubmitAnswerResult reports correctness and whether the quiz sequence
// continues.
type SubmitAnswerResult struct {
	Correct bool
	Status  string
}

// ScoreService validates answer submissions, awards time-decayed points and
// tracks per-member statistics.
type ScoreService interface {
	SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (*SubmitAnswerResult, error)
}

type scoreService struct {
	rooms repository.RoomRepository
	locks *RoomLocks
}

// NewScoreService creates a new score service. It shares the room lock table
// with the room service so both serialize on the same per-room mutex.
func NewScoreService(rooms repository.RoomRepository, locks *RoomLocks) ScoreService {
	return &scoreService{rooms: rooms, locks: locks}
}

// Award computes the points granted for a correct answer. Higher base weight
// and faster answers both raise the award; the result is floored to an
// integer and never negative.
//
//	award = floor( base * ( base / (timeTakenMs / 96) ) / 128 )
func Award(basePoint, timeTakenMs int) int {
	if timeTakenMs < minTimeTakenMs {
		timeTakenMs = minTimeTakenMs
	}
	award := float64(basePoint) * (float64(basePoint) / (float64(timeTakenMs) / 96.0)) / 128.0
	if award < 0 {
		return 0
	}
	return int(award)
}

// SubmitAnswer resolves the member, applies scoring, writes the roster back
// and reports whether the quiz continues. The whole read-modify-write runs
// under the room's lock so concurrent submissions for different members
// cannot overwrite each other.
func (s *scoreService) SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (*SubmitAnswerResult, error) {
	if in.QuestionNumber < 1 {
		return nil, fmt.Errorf("%w: question number must be positive", errs.ErrInvalidInput)
	}

	release := s.locks.Acquire(in.Code)
	defer release()

	// fresh read, never the room cache: the write below must build on the
	// committed roster
	room, err := s.rooms.FindByCodeForUpdate(ctx, in.Code)
	if err != nil {
		return nil, translateRoomLookup(in.Code, err)
	}

	member := room.MemberByID(in.UserID)
	if member == nil {
		return nil, errs.ErrMemberNotFound
	}

	correct := in.Chosen == in.Correct
	if correct {
		member.Points += Award(in.BasePoint, in.TimeTakenMs)
		member.TrueAnswers++
	} else {
		member.FalseAnswers++
	}

	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, fmt.Errorf("%w: save room %s: %v", errs.ErrUnavailable, in.Code, err)
	}

	status := StatusEnd
	if in.QuestionNumber < len(room.Questions) {
		status = StatusNext
	}
	return &SubmitAnswerResult{Correct: correct, Status: status}, nil
}

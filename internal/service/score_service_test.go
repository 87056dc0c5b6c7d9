package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	errs "quizroom/internal/errors"
	"quizroom/internal/model"
)

func TestAward(t *testing.T) {
	tests := []struct {
		name        string
		basePoint   int
		timeTakenMs int
		want        int
	}{
		{name: "slow answer earns the floor of the decay curve", basePoint: 100, timeTakenMs: 4800, want: 1},
		{name: "faster answer earns more", basePoint: 100, timeTakenMs: 960, want: 7},
		{name: "heavier question earns more at the same speed", basePoint: 200, timeTakenMs: 4800, want: 6},
		{name: "zero time is clamped instead of dividing by zero", basePoint: 100, timeTakenMs: 0, want: 7500},
		{name: "negative time is clamped the same way", basePoint: 100, timeTakenMs: -50, want: 7500},
		{name: "zero base earns nothing", basePoint: 0, timeTakenMs: 1000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Award(tt.basePoint, tt.timeTakenMs))
		})
	}
}

func TestScoreService_SubmitAnswer(t *testing.T) {
	tests := []struct {
		name             string
		input            SubmitAnswerInput
		wantCorrect      bool
		wantStatus       string
		wantPoints       int
		wantTrueAnswers  int
		wantFalseAnswers int
	}{
		{
			name: "correct answer awards points and counts a hit",
			input: SubmitAnswerInput{
				Code: "AbC123", UserID: "2", QuestionNumber: 1,
				Chosen: "a", Correct: "a", BasePoint: 100, TimeTakenMs: 4800,
			},
			wantCorrect:     true,
			wantStatus:      StatusNext,
			wantPoints:      31, // 30 carried in, plus 1 awarded
			wantTrueAnswers: 1,
		},
		{
			name: "wrong answer leaves points untouched and counts a miss",
			input: SubmitAnswerInput{
				Code: "AbC123", UserID: "2", QuestionNumber: 2,
				Chosen: "a", Correct: "b", BasePoint: 100, TimeTakenMs: 1000,
			},
			wantCorrect:      false,
			wantStatus:       StatusNext,
			wantPoints:       30,
			wantFalseAnswers: 1,
		},
		{
			name: "last question ends the sequence",
			input: SubmitAnswerInput{
				Code: "AbC123", UserID: "2", QuestionNumber: 3,
				Chosen: "c", Correct: "c", BasePoint: 200, TimeTakenMs: 4800,
			},
			wantCorrect:     true,
			wantStatus:      StatusEnd,
			wantPoints:      36,
			wantTrueAnswers: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := testRoom()
			rooms := new(MockRoomRepository)
			rooms.On("FindByCodeForUpdate", mock.Anything, "AbC123").Return(room, nil)
			rooms.On("Save", mock.Anything, room).Return(nil)

			svc := NewScoreService(rooms, NewRoomLocks())
			result, err := svc.SubmitAnswer(context.Background(), tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, result.Correct)
			assert.Equal(t, tt.wantStatus, result.Status)

			member := room.MemberByID(tt.input.UserID)
			assert.Equal(t, tt.wantPoints, member.Points)
			assert.Equal(t, tt.wantTrueAnswers, member.TrueAnswers)
			assert.Equal(t, tt.wantFalseAnswers, member.FalseAnswers)
			rooms.AssertExpectations(t)
		})
	}
}

func TestScoreService_SubmitAnswer_Errors(t *testing.T) {
	tests := []struct {
		name          string
		input         SubmitAnswerInput
		lookupRoom    *model.Room
		lookupErr     error
		expectedError error
	}{
		{
			name:          "question number below one is invalid",
			input:         SubmitAnswerInput{Code: "AbC123", UserID: "2", QuestionNumber: 0},
			expectedError: errs.ErrInvalidInput,
		},
		{
			name:          "unknown room",
			input:         SubmitAnswerInput{Code: "nosuch", UserID: "2", QuestionNumber: 1},
			lookupErr:     gorm.ErrRecordNotFound,
			expectedError: errs.ErrRoomNotFound,
		},
		{
			name:          "unknown member",
			input:         SubmitAnswerInput{Code: "AbC123", UserID: "42", QuestionNumber: 1},
			lookupRoom:    testRoom(),
			expectedError: errs.ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := new(MockRoomRepository)
			if tt.lookupRoom != nil || tt.lookupErr != nil {
				rooms.On("FindByCodeForUpdate", mock.Anything, tt.input.Code).Return(tt.lookupRoom, tt.lookupErr)
			}

			svc := NewScoreService(rooms, NewRoomLocks())
			result, err := svc.SubmitAnswer(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, result)
		})
	}
}

// memRoomRepo is a thread-safe in-memory RoomRepository. FindByCode hands out
// copies, the way a driver materializes a fresh document per read, so an
// unserialized read-modify-write would lose updates.
type memRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]*model.Room
}

func newMemRoomRepo(seed ...*model.Room) *memRoomRepo {
	r := &memRoomRepo{rooms: make(map[string]*model.Room)}
	for _, room := range seed {
		r.rooms[room.Code] = room
	}
	return r
}

func copyRoom(room *model.Room) *model.Room {
	out := *room
	out.Members = append([]model.Member(nil), room.Members...)
	out.Questions = append([]model.Question(nil), room.Questions...)
	out.BannedEmails = append([]string(nil), room.BannedEmails...)
	return &out
}

func (r *memRoomRepo) Create(ctx context.Context, room *model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.Code] = copyRoom(room)
	return nil
}

func (r *memRoomRepo) FindByCode(ctx context.Context, code string) (*model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyRoom(room), nil
}

func (r *memRoomRepo) FindByCodeForUpdate(ctx context.Context, code string) (*model.Room, error) {
	return r.FindByCode(ctx, code)
}

func (r *memRoomRepo) Save(ctx context.Context, room *model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.Code] = copyRoom(room)
	return nil
}

func (r *memRoomRepo) DeleteByCode(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, code)
	return nil
}

func TestScoreService_SubmitAnswer_ConcurrentMembersBothScored(t *testing.T) {
	rooms := newMemRoomRepo(testRoom())
	svc := NewScoreService(rooms, NewRoomLocks())

	submit := func(userID string) SubmitAnswerInput {
		return SubmitAnswerInput{
			Code: "AbC123", UserID: userID, QuestionNumber: 1,
			Chosen: "a", Correct: "a", BasePoint: 100, TimeTakenMs: 960,
		}
	}

	const rounds = 20
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		for _, userID := range []string{"2", "3"} {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				_, err := svc.SubmitAnswer(context.Background(), submit(userID))
				assert.NoError(t, err)
			}(userID)
		}
	}
	wg.Wait()

	room, err := rooms.FindByCode(context.Background(), "AbC123")
	assert.NoError(t, err)

	// every submission must survive: 7 points per round on top of the
	// carried-in totals, no lost updates between the two members
	pat := room.MemberByID("2")
	quinn := room.MemberByID("3")
	assert.Equal(t, 30+rounds*7, pat.Points)
	assert.Equal(t, rounds, pat.TrueAnswers)
	assert.Equal(t, 50+rounds*7, quinn.Points)
	assert.Equal(t, rounds, quinn.TrueAnswers)
}

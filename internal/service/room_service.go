package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizroom/internal/codegen"
	errs "quizroom/internal/errors"
	"quizroom/internal/model"
	"quizroom/internal/repository"
)

// guestEmail is the placeholder address stamped on guest members. Guests have
// no stable identity, so guest joins are exempt from the one-member-per-email
// rule.
const guestEmail = "guest@quizroom.app"

// maxCodeAttempts bounds the retry loop for room code generation. Short codes
// can collide; the unique index on rooms.code backstops the check.
const maxCodeAttempts = 5

// Leaderboard is the scoreboard view of a room. The owner conducts the quiz
// and never appears among the entries.
type Leaderboard struct {
	RoomName   string         `json:"roomName"`
	Entries    []model.Member `json:"leaderboard"`
	OwnerEmail string         `json:"owner"`
}

// RoomService manages the room lifecycle: creation, membership, questions and
// game state.
type RoomService interface {
	CreateRoom(ctx context.Context, name, ownerName, ownerEmail string) (*model.Room, error)
	JoinRoom(ctx context.Context, code, name, email string) (*model.Room, error)
	JoinAsGuest(ctx context.Context, code, displayName string) (*model.Room, *model.Member, error)
	ExitRoom(ctx context.Context, code, email string) (*model.Room, error)
	BanMember(ctx context.Context, code, requesterEmail, email string) (*model.Room, error)
	DeleteRoom(ctx context.Context, code, requesterEmail string) error
	AddQuestion(ctx context.Context, code string, question model.Question) (*model.Room, error)
	DeleteQuestion(ctx context.Context, code, questionID string) (*model.Room, error)
	GetRoom(ctx context.Context, code, email string) (*model.Room, error)
	GetQuestions(ctx context.Context, code string) ([]model.Question, error)
	GetQuestion(ctx context.Context, code string, number int) (*model.Question, error)
	MemberNames(ctx context.Context, code string) ([]string, error)
	SetGameStarted(ctx context.Context, code string, started bool) (*model.Room, error)
	GameStatus(ctx context.Context, code string) (bool, error)
	GetLeaderboard(ctx context.Context, code string) (*Leaderboard, error)
}

type roomService struct {
	rooms  repository.RoomRepository
	users  repository.UserRepository
	guests repository.GuestRepository
	gen    codegen.Generator
	locks  *RoomLocks
}

// NewRoomService creates a new room service.
func NewRoomService(
	rooms repository.RoomRepository,
	users repository.UserRepository,
	guests repository.GuestRepository,
	gen codegen.Generator,
	locks *RoomLocks,
) RoomService {
	return &roomService{
		rooms:  rooms,
		users:  users,
		guests: guests,
		gen:    gen,
		locks:  locks,
	}
}

// translateRoomLookup turns storage errors from a room lookup into domain errors.
func translateRoomLookup(code string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrRoomNotFound
	}
	return fmt.Errorf("%w: load room %s: %v", errs.ErrUnavailable, code, err)
}

// loadRoom resolves a room by code, translating storage errors into domain errors.
func (s *roomService) loadRoom(ctx context.Context, code string) (*model.Room, error) {
	room, err := s.rooms.FindByCode(ctx, code)
	if err != nil {
		return nil, translateRoomLookup(code, err)
	}
	return room, nil
}

// withRoom runs fn on the room document under the room's lock and writes the
// result back as a unit. The read bypasses the room cache: a write based on a
// cached copy could resurrect a stale roster.
func (s *roomService) withRoom(ctx context.Context, code string, fn func(room *model.Room) error) (*model.Room, error) {
	release := s.locks.Acquire(code)
	defer release()

	room, err := s.rooms.FindByCodeForUpdate(ctx, code)
	if err != nil {
		return nil, translateRoomLookup(code, err)
	}
	if err := fn(room); err != nil {
		return nil, err
	}
	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, fmt.Errorf("%w: save room %s: %v", errs.ErrUnavailable, code, err)
	}
	return room, nil
}

// CreateRoom creates a room with a freshly generated unique code and the
// owner as its sole member.
func (s *roomService) CreateRoom(ctx context.Context, name, ownerName, ownerEmail string) (*model.Room, error) {
	owner, err := s.users.FindByEmail(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: find owner: %v", errs.ErrUnavailable, err)
	}
	if ownerName == "" {
		ownerName = owner.Name
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.gen.Next(codegen.RoomCodeLength)
		if err != nil {
			return nil, fmt.Errorf("generate room code: %w", err)
		}

		if _, err := s.rooms.FindByCode(ctx, code); err == nil {
			continue // collision, draw again
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: check code: %v", errs.ErrUnavailable, err)
		}

		room := &model.Room{
			Code:  code,
			Name:  name,
			Owner: model.Owner{Name: ownerName, Email: ownerEmail},
			Members: []model.Member{
				{ID: fmt.Sprint(owner.ID), Name: ownerName, Email: ownerEmail},
			},
			Questions:    []model.Question{},
			BannedEmails: []string{},
			CreatedAt:    time.Now(),
		}
		if err := s.rooms.Create(ctx, room); err != nil {
			return nil, fmt.Errorf("%w: create room: %v", errs.ErrUnavailable, err)
		}
		return room, nil
	}
	return nil, fmt.Errorf("%w: could not allocate a unique room code", errs.ErrUnavailable)
}

// JoinRoom adds a registered user to the room. Joining is idempotent: an
// email that is already on the roster leaves the room unchanged.
func (s *roomService) JoinRoom(ctx context.Context, code, name, email string) (*model.Room, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: find user: %v", errs.ErrUnavailable, err)
	}
	if name == "" {
		name = user.Name
	}

	return s.withRoom(ctx, code, func(room *model.Room) error {
		if room.IsBanned(email) {
			return errs.ErrBanned
		}
		if room.MemberByEmail(email) != nil {
			return nil
		}
		room.Members = append(room.Members, model.Member{
			ID:    fmt.Sprint(user.ID),
			Name:  name,
			Email: email,
		})
		return nil
	})
}

// JoinAsGuest mints a disposable guest identity and appends it to the roster.
// Guests carry a placeholder email, so repeated guest joins always add new
// members.
func (s *roomService) JoinAsGuest(ctx context.Context, code, displayName string) (*model.Room, *model.Member, error) {
	guest := &model.Guest{
		ID:        uuid.New().String(),
		Name:      displayName,
		Email:     guestEmail,
		CreatedAt: time.Now(),
	}
	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, nil, fmt.Errorf("%w: create guest: %v", errs.ErrUnavailable, err)
	}

	member := model.Member{ID: guest.ID, Name: displayName, Email: guestEmail}
	room, err := s.withRoom(ctx, code, func(room *model.Room) error {
		room.Members = append(room.Members, member)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return room, &member, nil
}

// ExitRoom removes the member with the given email. The ban list is untouched.
func (s *roomService) ExitRoom(ctx context.Context, code, email string) (*model.Room, error) {
	return s.withRoom(ctx, code, func(room *model.Room) error {
		room.RemoveMember(email)
		return nil
	})
}

// BanMember removes the member and bars the email from rejoining. Only the
// room owner may ban; banning twice is a no-op beyond the set add.
func (s *roomService) BanMember(ctx context.Context, code, requesterEmail, email string) (*model.Room, error) {
	return s.withRoom(ctx, code, func(room *model.Room) error {
		if room.Owner.Email != requesterEmail {
			return errs.ErrNotRoomOwner
		}
		room.RemoveMember(email)
		if !room.IsBanned(email) {
			room.BannedEmails = append(room.BannedEmails, email)
		}
		return nil
	})
}

// DeleteRoom destroys the room. Owner only.
func (s *roomService) DeleteRoom(ctx context.Context, code, requesterEmail string) error {
	release := s.locks.Acquire(code)
	defer release()

	room, err := s.rooms.FindByCodeForUpdate(ctx, code)
	if err != nil {
		return translateRoomLookup(code, err)
	}
	if room.Owner.Email != requesterEmail {
		return errs.ErrNotRoomOwner
	}
	if err := s.rooms.DeleteByCode(ctx, code); err != nil {
		return fmt.Errorf("%w: delete room %s: %v", errs.ErrUnavailable, code, err)
	}
	return nil
}

// AddQuestion appends a question to the room's sequence and assigns it a
// generated id.
func (s *roomService) AddQuestion(ctx context.Context, code string, question model.Question) (*model.Room, error) {
	id, err := s.gen.Next(codegen.QuestionIDLength)
	if err != nil {
		return nil, fmt.Errorf("generate question id: %w", err)
	}
	question.ID = id

	return s.withRoom(ctx, code, func(room *model.Room) error {
		room.Questions = append(room.Questions, question)
		return nil
	})
}

// DeleteQuestion filters the question with the given id out of the sequence.
// Deleting an unknown id is a no-op, not an error.
func (s *roomService) DeleteQuestion(ctx context.Context, code, questionID string) (*model.Room, error) {
	return s.withRoom(ctx, code, func(room *model.Room) error {
		kept := room.Questions[:0]
		for _, q := range room.Questions {
			if q.ID != questionID {
				kept = append(kept, q)
			}
		}
		room.Questions = kept
		return nil
	})
}

// GetRoom returns the room detail for a member. Banned emails and
// non-members are denied.
func (s *roomService) GetRoom(ctx context.Context, code, email string) (*model.Room, error) {
	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.IsBanned(email) || room.MemberByEmail(email) == nil {
		return nil, errs.ErrAccessDenied
	}
	return room, nil
}

// GetQuestions returns the room's full question sequence.
func (s *roomService) GetQuestions(ctx context.Context, code string) ([]model.Question, error) {
	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	return room.Questions, nil
}

// GetQuestion returns the question at the given 1-based position. The
// external contract is 1-based: number 1 is the first question added.
func (s *roomService) GetQuestion(ctx context.Context, code string, number int) (*model.Question, error) {
	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if number < 1 || number > len(room.Questions) {
		return nil, errs.ErrQuestionNotFound
	}
	return &room.Questions[number-1], nil
}

// MemberNames returns member display names in join order.
func (s *roomService) MemberNames(ctx context.Context, code string) ([]string, error) {
	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	return room.MemberNames(), nil
}

// SetGameStarted toggles the room's started flag. There are no transition
// restrictions; setting the current value again is allowed.
func (s *roomService) SetGameStarted(ctx context.Context, code string, started bool) (*model.Room, error) {
	return s.withRoom(ctx, code, func(room *model.Room) error {
		room.GameStarted = started
		return nil
	})
}

// GameStatus reports whether the game has been started.
func (s *roomService) GameStatus(ctx context.Context, code string) (bool, error) {
	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return false, err
	}
	return room.GameStarted, nil
}

// GetLeaderboard returns members sorted by points descending, owner excluded.
// Ties keep join order; the sort is stable.
func (s *roomService) GetLeaderboard(ctx context.Context, code string) (*Leaderboard, error) {
	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	entries := make([]model.Member, 0, len(room.Members))
	for _, m := range room.Members {
		if m.Email == room.Owner.Email {
			continue
		}
		entries = append(entries, m)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	return &Leaderboard{
		RoomName:   room.Name,
		Entries:    entries,
		OwnerEmail: room.Owner.Email,
	}, nil
}

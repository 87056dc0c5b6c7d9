package model

import "time"

// Owner identifies the user that created a room. The owner conducts the quiz
// and is never listed on the leaderboard.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Member is a per-room participant record. Joining two rooms with the same
// email creates two independent Member records; points and answer counters
// belong to the room, not the user.
type Member struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Points       int    `json:"points"`
	TrueAnswers  int    `json:"trueAnswers"`
	FalseAnswers int    `json:"falseAnswers"`
}

// Question is a multiple-choice question. Answers maps option labels
// ("a".."d") to answer text; Correct holds the winning label. Point is the
// base weight fed into the award formula and Time the allotted seconds.
type Question struct {
	ID      string            `json:"id"`
	Text    string            `json:"question"`
	Answers map[string]string `json:"answers"`
	Correct string            `json:"correct"`
	Point   int               `json:"point"`
	Time    int               `json:"time"`
}

// Room is the unit of storage for a quiz session. The member roster, question
// sequence and ban list persist as JSON documents inside the row, so a room is
// always read and written as a whole.
type Room struct {
	ID           uint       `json:"-" gorm:"primaryKey"`
	Code         string     `json:"code" gorm:"uniqueIndex;size:16;not null"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Owner        Owner      `json:"owner" gorm:"type:json;serializer:json"`
	Members      []Member   `json:"members" gorm:"type:json;serializer:json"`
	Questions    []Question `json:"questions" gorm:"type:json;serializer:json"`
	BannedEmails []string   `json:"bannedEmails" gorm:"type:json;serializer:json"`
	GameStarted  bool       `json:"gameStarted"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"-"`
}

// MemberByEmail returns the member with the given email, or nil.
func (r *Room) MemberByEmail(email string) *Member {
	for i := range r.Members {
		if r.Members[i].Email == email {
			return &r.Members[i]
		}
	}
	return nil
}

// MemberByID returns the member with the given id, or nil.
func (r *Room) MemberByID(id string) *Member {
	for i := range r.Members {
		if r.Members[i].ID == id {
			return &r.Members[i]
		}
	}
	return nil
}

// IsBanned reports whether the email is on the room's ban list.
func (r *Room) IsBanned(email string) bool {
	for _, banned := range r.BannedEmails {
		if banned == email {
			return true
		}
	}
	return false
}

// RemoveMember drops any member with the given email from the roster and
// reports whether one was removed.
func (r *Room) RemoveMember(email string) bool {
	kept := r.Members[:0]
	removed := false
	for _, m := range r.Members {
		if m.Email == email {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	r.Members = kept
	return removed
}

// MemberNames returns member display names in join order.
func (r *Room) MemberNames() []string {
	names := make([]string, len(r.Members))
	for i, m := range r.Members {
		names[i] = m.Name
	}
	return names
}

// Guest is a disposable identity minted for an unauthenticated join. It exists
// only to stamp a Member record and carries no credential.
type Guest struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rosterRoom() *Room {
	return &Room{
		Code:  "AbC123",
		Owner: Owner{Name: "Olive", Email: "olive@example.com"},
		Members: []Member{
			{ID: "1", Name: "Olive", Email: "olive@example.com"},
			{ID: "2", Name: "Pat", Email: "pat@example.com"},
		},
		BannedEmails: []string{"troll@example.com"},
	}
}

func TestRoom_MemberLookups(t *testing.T) {
	room := rosterRoom()

	assert.Equal(t, "Pat", room.MemberByEmail("pat@example.com").Name)
	assert.Nil(t, room.MemberByEmail("stranger@example.com"))
	assert.Equal(t, "Olive", room.MemberByID("1").Name)
	assert.Nil(t, room.MemberByID("99"))
}

func TestRoom_MemberLookupsReturnMutableRecords(t *testing.T) {
	room := rosterRoom()

	room.MemberByID("2").Points += 10
	assert.Equal(t, 10, room.Members[1].Points)
}

func TestRoom_RemoveMember(t *testing.T) {
	room := rosterRoom()

	assert.True(t, room.RemoveMember("pat@example.com"))
	assert.Len(t, room.Members, 1)
	assert.False(t, room.RemoveMember("pat@example.com"))
}

func TestRoom_IsBanned(t *testing.T) {
	room := rosterRoom()

	assert.True(t, room.IsBanned("troll@example.com"))
	assert.False(t, room.IsBanned("pat@example.com"))
}

func TestRoom_MemberNames(t *testing.T) {
	assert.Equal(t, []string{"Olive", "Pat"}, rosterRoom().MemberNames())
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessLevel is the club's privilege scale. The ordering is load-bearing:
// every authorization decision is a >= comparison on this value.
type AccessLevel int

const (
	LevelBanned    AccessLevel = iota - 1 // -1
	LevelNonMember                        // 0
	LevelAlumni                           // 1
	LevelMember                           // 2
	LevelOfficer                          // 3
	LevelAdmin                            // 4
)

// AtLeast reports whether the level meets the given minimum.
func (l AccessLevel) AtLeast(min AccessLevel) bool {
	return l >= min
}

func (l AccessLevel) String() string {
	switch l {
	case LevelBanned:
		return "banned"
	case LevelNonMember:
		return "non-member"
	case LevelAlumni:
		return "alumni"
	case LevelMember:
		return "member"
	case LevelOfficer:
		return "officer"
	case LevelAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never JSON-encode
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`

	AccessLevel   AccessLevel `json:"accessLevel"`
	EmailVerified bool        `json:"emailVerified"`
	EmailOptIn    bool        `json:"emailOptIn"`

	DiscordUsername string `json:"discordUsername,omitempty"`
	DiscordDiscrim  string `json:"discordDiscrim,omitempty"`
	DiscordID       string `json:"discordID,omitempty"`
	Major           string `json:"major,omitempty"`
	DoorCode        string `json:"-"`
	APIKey          string `json:"-"`

	PagesPrinted         int        `json:"pagesPrinted"`
	MembershipValidUntil *time.Time `json:"membershipValidUntil,omitempty"`
	JoinedAt             *time.Time `json:"joinedAt,omitempty"`
	LastLogin            *time.Time `json:"lastLogin,omitempty"`
}

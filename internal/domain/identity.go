package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity is what the services need to know about the caller. It travels
// inside the auth token and is passed explicitly into every service call.
type Identity struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"name"`
	Role        Role   `json:"role"`
	Region      string `json:"rw"`
	SubRegion   string `json:"rt,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	DisplayName  string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"password_hash,omitempty"`
	Role         Role      `db:"role" json:"role"`
	Region       string    `db:"rw" json:"rw"`
	SubRegion    string    `db:"rt" json:"rt,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (u *User) GetID() string   { return u.ID }
func (u *User) SetID(id string) { u.ID = id }

func (u *User) Identity() Identity {
	return Identity{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Region:      u.Region,
		SubRegion:   u.SubRegion,
	}
}

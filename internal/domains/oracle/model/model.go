package model

import "time"

const EntityName = "session"

const (
	RoleUser   = "user"
	RoleOracle = "model"
)

type Message struct {
	Role      string
	Text      string
	Timestamp time.Time
}

package models

import "time"

type ContestStatus string

const (
	ContestUpcoming ContestStatus = "upcoming"
	ContestLive     ContestStatus = "live"
	ContestFinished ContestStatus = "finished"
)

func (s ContestStatus) Valid() bool {
	switch s {
	case ContestUpcoming, ContestLive, ContestFinished:
		return true
	}
	return false
}

type Contest struct {
	ID            string        `json:"id" bson:"_id"`
	Name          string        `json:"name" bson:"name"`
	Status        ContestStatus `json:"status" bson:"status"`
	QuestionIDs   []string      `json:"question_ids" bson:"question_ids"`
	AssignedUsers []string      `json:"assigned_users" bson:"assigned_users"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
}

// ContestView is the trimmed listing returned to regular users.
type ContestView struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Status    ContestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func (c *Contest) View() ContestView {
	return ContestView{ID: c.ID, Name: c.Name, Status: c.Status, CreatedAt: c.CreatedAt}
}

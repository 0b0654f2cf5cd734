package domain

type ChangeAction string

const (
	ChangeCreated ChangeAction = "created"
	ChangeUpdated ChangeAction = "updated"
	ChangeDeleted ChangeAction = "deleted"
)

// Change is published after a successful write so connected clients know to refetch.
type Change struct {
	Entity string       `json:"entity"`
	Action ChangeAction `json:"action"`
	ID     uint         `json:"id"`
}

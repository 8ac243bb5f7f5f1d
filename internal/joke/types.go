package joke

import "time"

// Joke is a stored joke record.
//
// ID is assigned by the store on creation and never reused. CreatedAt is set
// once; UpdatedAt is refreshed on every successful update, so
// CreatedAt <= UpdatedAt always holds.
//
// The author field is exposed as "name" in JSON, matching the list filter
// query parameter.
type Joke struct {
	ID        int64     `json:"id"`
	Setup     string    `json:"setup"`
	Punchline string    `json:"punchline"`
	Author    string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateParams carries a partial update. Empty fields are left unchanged.
// An all-empty UpdateParams is a valid no-op that still refreshes UpdatedAt.
type UpdateParams struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
	Author    string `json:"name"`
}

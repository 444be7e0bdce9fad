package models

// CreateBuildRequest is the JSON roster accepted by POST /builds.
type CreateBuildRequest struct {
	Players []PlayerRequest `json:"players" validate:"required,min=1,dive"`
	// OpenSkipsNonmain drops nonmain entries for open-tier players.
	OpenSkipsNonmain bool `json:"open_skips_nonmain"`
}

// PlayerRequest is one roster entry in the JSON form of the roster. Skill and
// class names are case-insensitive; unknown names are rejected when the player
// is built.
type PlayerRequest struct {
	Nickname   string    `json:"nickname" validate:"required,max=64"`
	Skill      string    `json:"skill" validate:"required"`
	Main       string    `json:"main" validate:"required"`
	Additional ClassList `json:"additional" validate:"max=4"`
}

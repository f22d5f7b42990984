package models

// Profile is a snapshot of the portfolio owner's public GitHub profile.
// It is consumed once per fetch cycle to compute statistics and is not
// retained in view state afterwards.
type Profile struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

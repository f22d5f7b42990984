package models

// PortfolioStats holds the aggregate numbers displayed above the project grid.
// Star and fork totals are summed over the full fetched repository list,
// never the filtered or display-capped subset.
type PortfolioStats struct {
	RepoCount     int `json:"repo_count"`
	FollowerCount int `json:"follower_count"`
	StarTotal     int `json:"star_total"`
	ForkTotal     int `json:"fork_total"`
}

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/internal/services"
	"github.com/alimgiray/gitfolio/internal/store"
	"github.com/alimgiray/gitfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioService *services.PortfolioService
	statsService     *services.StatsService
	projectService   *services.ProjectService
	filterService    *services.FilterService
	viewState        *store.ViewStateStore
	username         string
}

// StatView is a single statistic prepared for the count-up display
type StatView struct {
	Label  string
	Value  int
	Frames string
}

func NewPortfolioHandler(
	portfolioService *services.PortfolioService,
	statsService *services.StatsService,
	projectService *services.ProjectService,
	filterService *services.FilterService,
	viewState *store.ViewStateStore,
	username string,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		statsService:     statsService,
		projectService:   projectService,
		filterService:    filterService,
		viewState:        viewState,
		username:         username,
	}
}

// Index handles the portfolio shell page. The page shows a loading
// placeholder and pulls the portfolio fragment once it is ready.
func (h *PortfolioHandler) Index(c *gin.Context) {
	data := gin.H{
		"Title":    "Portfolio",
		"Username": h.username,
	}

	c.HTML(http.StatusOK, "index", data)
}

// Load fetches the profile and repository list jointly and renders the full
// portfolio fragment: stats, filter bar and project grid. On any fetch
// failure the previous view state is kept and a single error fragment
// replaces the render target.
func (h *PortfolioHandler) Load(c *gin.Context) {
	if !h.viewState.TryBeginRefresh() {
		// A fetch is already outstanding; never start a second one.
		c.HTML(http.StatusAccepted, "loading", gin.H{})
		return
	}

	profile, repositories, err := h.portfolioService.Fetch(c.Request.Context(), h.username)
	if err != nil {
		h.viewState.AbortRefresh()
		logger.WithError(err).Error("Failed to fetch portfolio data")
		c.HTML(http.StatusOK, "portfolio_error", gin.H{
			"Message": "Could not load projects right now. Please try again later.",
		})
		return
	}

	h.viewState.CompleteRefresh(repositories)

	stats := h.statsService.ComputeStats(profile, repositories)
	cards := h.projectService.BuildCards(repositories)

	data := gin.H{
		"Profile":         profile,
		"Stats":           h.buildStatViews(stats),
		"FrameIntervalMS": h.statsService.FrameInterval().Milliseconds(),
		"Languages":       h.filterService.Languages(repositories),
		"ActiveFilter":    store.FilterAll,
		"Cards":           cards,
	}

	c.HTML(http.StatusOK, "portfolio", data)
}

// buildStatViews attaches the count-up frame sequence to each statistic
func (h *PortfolioHandler) buildStatViews(stats *models.PortfolioStats) []StatView {
	views := []StatView{
		{Label: "Repositories", Value: stats.RepoCount},
		{Label: "Followers", Value: stats.FollowerCount},
		{Label: "Total Stars", Value: stats.StarTotal},
		{Label: "Total Forks", Value: stats.ForkTotal},
	}

	for i := range views {
		frames := h.statsService.CountUpFrames(views[i].Value)
		parts := make([]string, len(frames))
		for j, frame := range frames {
			parts[j] = strconv.Itoa(frame)
		}
		views[i].Frames = strings.Join(parts, ",")
	}

	return views
}

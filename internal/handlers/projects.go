package handlers

import (
	"net/http"

	"github.com/alimgiray/gitfolio/internal/services"
	"github.com/alimgiray/gitfolio/internal/store"
	"github.com/alimgiray/gitfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ProjectsHandler struct {
	projectService *services.ProjectService
	filterService  *services.FilterService
	exportService  *services.ExportService
	viewState      *store.ViewStateStore
}

func NewProjectsHandler(
	projectService *services.ProjectService,
	filterService *services.FilterService,
	exportService *services.ExportService,
	viewState *store.ViewStateStore,
) *ProjectsHandler {
	return &ProjectsHandler{
		projectService: projectService,
		filterService:  filterService,
		exportService:  exportService,
		viewState:      viewState,
	}
}

// Filter re-renders the project grid for a language tag. It only reads the
// stored repository list; no fetch is triggered.
func (h *ProjectsHandler) Filter(c *gin.Context) {
	tag := c.DefaultQuery("tag", store.FilterAll)
	h.viewState.SetFilter(tag)

	snapshot := h.viewState.Snapshot()
	filtered := h.filterService.Filter(snapshot.Repositories, snapshot.ActiveFilter)
	cards := h.projectService.BuildCards(filtered)

	c.HTML(http.StatusOK, "projects", gin.H{
		"Cards": cards,
	})
}

// Export downloads the fetched repository list as a spreadsheet
func (h *ProjectsHandler) Export(c *gin.Context) {
	snapshot := h.viewState.Snapshot()

	workbook, err := h.exportService.BuildWorkbook(snapshot.Repositories)
	if err != nil {
		logger.WithError(err).Error("Failed to build export workbook")
		c.String(http.StatusInternalServerError, "Export failed")
		return
	}
	defer workbook.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="projects.xlsx"`)
	if err := workbook.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write export workbook")
	}
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alimgiray/gitfolio/internal/services"
	"github.com/alimgiray/gitfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeService *services.ResumeService
}

func NewResumeHandler(resumeService *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
	}
}

// Upload accepts a resume file and returns an inline success or validation
// fragment. A rejected file leaves any previously issued handle untouched.
func (h *ResumeHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		c.HTML(http.StatusOK, "resume_error", gin.H{
			"Error": "Please choose a file to upload.",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		logger.WithError(err).Error("Failed to open uploaded resume")
		c.HTML(http.StatusOK, "resume_error", gin.H{
			"Error": "Could not read the uploaded file.",
		})
		return
	}
	defer src.Close()

	resume, err := h.resumeService.Upload(file.Filename, file.Header.Get("Content-Type"), file.Size, src)
	if err != nil {
		if errors.Is(err, services.ErrResumeType) || errors.Is(err, services.ErrResumeTooLarge) {
			c.HTML(http.StatusOK, "resume_error", gin.H{
				"Error": err.Error(),
			})
			return
		}
		logger.WithError(err).Error("Failed to store uploaded resume")
		c.HTML(http.StatusOK, "resume_error", gin.H{
			"Error": "Could not store the uploaded file.",
		})
		return
	}

	c.HTML(http.StatusOK, "resume_success", gin.H{
		"Resume": resume,
	})
}

// Download serves a previously uploaded resume by its handle
func (h *ResumeHandler) Download(c *gin.Context) {
	resume, err := h.resumeService.Get(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Resume not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.FileName))
	c.Data(http.StatusOK, resume.ContentType, resume.Content)
}

package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/alimgiray/gitfolio/internal/models"
	"github.com/alimgiray/gitfolio/internal/services"
	"github.com/alimgiray/gitfolio/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher lets each test script the outcome of the two remote reads
type stubFetcher struct {
	profile    *models.Profile
	repos      []*models.Repository
	profileErr error
	reposErr   error
}

func (f *stubFetcher) FetchProfile(ctx context.Context, username string) (*models.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *stubFetcher) FetchRepositories(ctx context.Context, username string) ([]*models.Repository, error) {
	if f.reposErr != nil {
		return nil, f.reposErr
	}
	return f.repos, nil
}

func strPtr(s string) *string {
	return &s
}

// setupRouter wires a router with real templates and the given fetcher
func setupRouter(t *testing.T, fetcher services.PortfolioFetcher, viewState *store.ViewStateStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	portfolioService := services.NewPortfolioService(fetcher)
	statsService := services.NewStatsService()
	projectService := services.NewProjectService(services.DefaultMaxProjects, services.DefaultStaggerDelayMS)
	filterService := services.NewFilterService()
	exportService := services.NewExportService()
	resumeService := services.NewResumeService()

	portfolioHandler := NewPortfolioHandler(portfolioService, statsService, projectService, filterService, viewState, "octocat")
	projectsHandler := NewProjectsHandler(projectService, filterService, exportService, viewState)
	resumeHandler := NewResumeHandler(resumeService)

	router := gin.New()
	router.LoadHTMLGlob("../../web/templates/*.html")
	router.GET("/", portfolioHandler.Index)
	router.GET("/portfolio", portfolioHandler.Load)
	router.GET("/projects", projectsHandler.Filter)
	router.GET("/projects/export", projectsHandler.Export)
	router.POST("/resume", resumeHandler.Upload)
	router.GET("/resume/:id", resumeHandler.Download)

	return router
}

func seedStore(t *testing.T, viewState *store.ViewStateStore, repos []*models.Repository) {
	t.Helper()
	require.True(t, viewState.TryBeginRefresh())
	viewState.CompleteRefresh(repos)
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestPortfolioHandler_Load(t *testing.T) {
	t.Run("Success renders stats and cards", func(t *testing.T) {
		viewState := store.NewViewStateStore()
		repo := models.NewRepository(1, "web-app", "https://github.com/octocat/web-app")
		repo.Language = strPtr("Go")
		repo.Stars = 3

		fetcher := &stubFetcher{
			profile: &models.Profile{Username: "octocat", PublicRepos: 1, Followers: 2},
			repos:   []*models.Repository{repo},
		}
		router := setupRouter(t, fetcher, viewState)

		w := get(router, "/portfolio")
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "web-app")
		assert.Contains(t, body, "data-frames=")
		assert.Contains(t, body, `data-filter="Go"`)

		snap := viewState.Snapshot()
		require.Len(t, snap.Repositories, 1)
		assert.Equal(t, store.FilterAll, snap.ActiveFilter)
	})

	t.Run("Fetch failure keeps prior view state", func(t *testing.T) {
		viewState := store.NewViewStateStore()
		seedStore(t, viewState, []*models.Repository{
			models.NewRepository(1, "previous", "https://github.com/octocat/previous"),
		})

		fetcher := &stubFetcher{
			profile:  &models.Profile{Username: "octocat"},
			reposErr: errors.New("github api error"),
		}
		router := setupRouter(t, fetcher, viewState)

		w := get(router, "/portfolio")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Could not load projects")

		// The profile read succeeding must not cause a partial update.
		snap := viewState.Snapshot()
		require.Len(t, snap.Repositories, 1)
		assert.Equal(t, "previous", snap.Repositories[0].Name)
	})

	t.Run("No second fetch while one is outstanding", func(t *testing.T) {
		viewState := store.NewViewStateStore()
		require.True(t, viewState.TryBeginRefresh())

		fetcher := &stubFetcher{profile: &models.Profile{Username: "octocat"}}
		router := setupRouter(t, fetcher, viewState)

		w := get(router, "/portfolio")
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), "Loading")
	})
}

func TestProjectsHandler_Filter(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *store.ViewStateStore) {
		viewState := store.NewViewStateStore()

		goRepo := models.NewRepository(1, "cli-tool", "https://github.com/octocat/cli-tool")
		goRepo.Language = strPtr("Go")
		tsRepo := models.NewRepository(2, "web-app", "https://github.com/octocat/web-app")
		tsRepo.Language = strPtr("TypeScript")
		bare := models.NewRepository(3, "notes", "https://github.com/octocat/notes")

		seedStore(t, viewState, []*models.Repository{goRepo, tsRepo, bare})
		return setupRouter(t, &stubFetcher{}, viewState), viewState
	}

	t.Run("Tag filters the grid", func(t *testing.T) {
		router, viewState := newRouter(t)

		w := get(router, "/projects?tag=go")
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "cli-tool")
		assert.NotContains(t, body, "web-app")
		assert.NotContains(t, body, "notes")

		assert.Equal(t, "go", viewState.Snapshot().ActiveFilter)
	})

	t.Run("All tag returns everything", func(t *testing.T) {
		router, _ := newRouter(t)

		w := get(router, "/projects?tag=all")
		body := w.Body.String()
		assert.Contains(t, body, "cli-tool")
		assert.Contains(t, body, "web-app")
		assert.Contains(t, body, "notes")
	})

	t.Run("No match renders placeholder", func(t *testing.T) {
		router, _ := newRouter(t)

		w := get(router, "/projects?tag=cobol")
		assert.Contains(t, w.Body.String(), "No projects found")
	})
}

func TestProjectsHandler_EscapesUntrustedText(t *testing.T) {
	viewState := store.NewViewStateStore()

	hostile := models.NewRepository(1, `<img src=x onerror=alert(1)>`, "https://github.com/octocat/x")
	hostile.Description = strPtr(`<script>alert("xss")</script>`)
	hostile.Language = strPtr(`<b>Go</b>`)

	seedStore(t, viewState, []*models.Repository{hostile})
	router := setupRouter(t, &stubFetcher{}, viewState)

	w := get(router, "/projects?tag=all")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, "<img src=x")
	assert.NotContains(t, body, "<script>alert")
	assert.Contains(t, body, "&lt;img src=x onerror=alert(1)&gt;")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestProjectsHandler_Export(t *testing.T) {
	viewState := store.NewViewStateStore()
	seedStore(t, viewState, []*models.Repository{
		models.NewRepository(1, "cli-tool", "https://github.com/octocat/cli-tool"),
	})
	router := setupRouter(t, &stubFetcher{}, viewState)

	w := get(router, "/projects/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "projects.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestResumeHandler_UploadAndDownload(t *testing.T) {
	router := setupRouter(t, &stubFetcher{}, store.NewViewStateStore())

	uploadResume := func(t *testing.T, filename, contentType string, content []byte) *httptest.ResponseRecorder {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/resume", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("PDF is accepted and downloadable", func(t *testing.T) {
		w := uploadResume(t, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "Uploaded cv.pdf")

		// Pull the issued handle out of the download link.
		start := strings.Index(body, `/resume/`)
		require.GreaterOrEqual(t, start, 0)
		rest := body[start+len("/resume/"):]
		id := rest[:strings.Index(rest, `"`)]

		dl := get(router, "/resume/"+id)
		require.Equal(t, http.StatusOK, dl.Code)
		assert.Equal(t, "%PDF-1.4", dl.Body.String())
		assert.Contains(t, dl.Header().Get("Content-Disposition"), "cv.pdf")
	})

	t.Run("Non-PDF is rejected inline", func(t *testing.T) {
		w := uploadResume(t, "cv.docx", "application/msword", []byte("not a pdf"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "PDF")
	})

	t.Run("Unknown handle is a 404", func(t *testing.T) {
		w := get(router, "/resume/does-not-exist")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

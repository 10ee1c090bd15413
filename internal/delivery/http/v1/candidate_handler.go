package v1

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-recruitment-tracker/config"
	"go-recruitment-tracker/internal/delivery/http/middleware"
	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/upload"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	pipelineUC  domain.PipelineUsecase
	cfg         *config.Config
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, pipelineUC domain.PipelineUsecase, cfg *config.Config) {
	handler := &CandidateHandler{candidateUC: candidateUC, pipelineUC: pipelineUC, cfg: cfg}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.GetDetails)
		candidates.POST("", handler.Create)
		candidates.PATCH("/:id", handler.Update)
		candidates.POST("/:id/resume", handler.UploadResume)
		candidates.POST("/:id/photo", handler.UploadPhoto)
	}

	// Stage moves stay with the people running the pipeline
	writers := candidates.Group("")
	writers.Use(middleware.RequireRoles(domain.RoleRecruiter, domain.RoleAdmin))
	{
		writers.PATCH("/:id/stage", handler.ChangeStage)
	}
}

type CreateCandidateRequest struct {
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Phone      *string  `json:"phone"`
	Education  *string  `json:"education"`
	Experience *string  `json:"experience"`
	Skills     []string `json:"skills"`
	Stage      string   `json:"stage"`
	Notes      *string  `json:"notes"`
	UserID     *int64   `json:"user_id"`
}

type ChangeStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// Create godoc
// @Summary      Create a candidate
// @Description  Add a candidate profile, as JSON or as a multipart form with an optional resume
// @Tags         candidates
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        candidate  body      CreateCandidateRequest  true  "Candidate JSON"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	var resumeURL *string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		url, err := h.bindCandidateForm(c, &req)
		if err != nil {
			c.Error(err)
			return
		}
		resumeURL = url
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	candidate := &domain.Candidate{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		ResumeURL:  resumeURL,
		Education:  req.Education,
		Experience: req.Experience,
		Skills:     req.Skills,
		Stage:      req.Stage,
		Notes:      req.Notes,
		UserID:     req.UserID,
	}

	if err := h.candidateUC.CreateCandidate(c.Request.Context(), actorID, candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Description  Apply a partial update; a stage change is recorded as a pipeline transition
// @Tags         candidates
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path      int                    true  "Candidate ID"
// @Param        candidate  body      domain.CandidatePatch  true  "Fields to update"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /candidates/{id} [patch]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var patch domain.CandidatePatch
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := h.bindCandidatePatchForm(c, &patch); err != nil {
			c.Error(err)
			return
		}
	} else if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// A stage change through the general update carries the same gate as
	// the dedicated stage route.
	if patch.Stage != nil && !isPipelineRole(c) {
		c.Error(apperror.Forbidden("Insufficient permissions"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	candidate, err := h.candidateUC.UpdateCandidate(c.Request.Context(), actorID, id, patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// ChangeStage godoc
// @Summary      Change a candidate's stage
// @Description  Move the candidate through the pipeline and record the transition
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id     path      int                 true  "Candidate ID"
// @Param        stage  body      ChangeStageRequest  true  "New stage"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /candidates/{id}/stage [patch]
// @Security     BearerAuth
func (h *CandidateHandler) ChangeStage(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ChangeStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	candidate, err := h.pipelineUC.TransitionCandidateStage(c.Request.Context(), actorID, id, req.Stage)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate stage updated", candidate)
}

// List godoc
// @Summary      List candidates
// @Description  Get all candidates, optionally filtered by stage
// @Tags         candidates
// @Produce      json
// @Param        stage  query     string  false  "Pipeline stage filter"
// @Success      200    {object}  response.Response
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c.Request.Context(), c.Query("stage"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate list", candidates)
}

// GetDetails godoc
// @Summary      Get candidate details
// @Description  Get a single candidate by ID
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate details", candidate)
}

// UploadResume godoc
// @Summary      Upload a candidate's resume
// @Description  Accept a PDF resume and attach its URL to the candidate
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "Candidate ID"
// @Param        file  formData  file  true  "Resume PDF"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /candidates/{id}/resume [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	name, data, err := h.readUpload(c, "file")
	if err != nil {
		c.Error(err)
		return
	}
	if err := upload.ValidateResume(name, data); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	url, err := upload.Save(h.cfg.UploadDir, name, data)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	candidate, err := h.candidateUC.UpdateCandidate(c.Request.Context(), actorID, id, domain.CandidatePatch{ResumeURL: &url})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", candidate)
}

// UploadPhoto godoc
// @Summary      Upload a candidate's photo
// @Description  Accept a JPEG/PNG photo, downscale it, and attach its URL to the candidate
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "Candidate ID"
// @Param        file  formData  file  true  "Photo"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /candidates/{id}/photo [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadPhoto(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	name, data, err := h.readUpload(c, "file")
	if err != nil {
		c.Error(err)
		return
	}
	if err := upload.ValidateImage(name, data); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resized, err := upload.ResizePhoto(data)
	if err != nil {
		c.Error(apperror.BadRequest("Could not process image"))
		return
	}

	url, err := upload.Save(h.cfg.UploadDir, "photo.jpg", resized)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	candidate, err := h.candidateUC.SetProfilePhoto(c.Request.Context(), id, url)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Photo uploaded", candidate)
}

// bindCandidateForm reads candidate fields from a multipart form. Skills come
// comma separated. An optional "resume" part is validated and saved, and its
// URL returned.
func (h *CandidateHandler) bindCandidateForm(c *gin.Context, req *CreateCandidateRequest) (*string, error) {
	req.FullName = c.PostForm("full_name")
	req.Email = c.PostForm("email")
	req.Stage = c.PostForm("stage")
	if v, ok := c.GetPostForm("phone"); ok {
		req.Phone = &v
	}
	if v, ok := c.GetPostForm("education"); ok {
		req.Education = &v
	}
	if v, ok := c.GetPostForm("experience"); ok {
		req.Experience = &v
	}
	if v, ok := c.GetPostForm("notes"); ok {
		req.Notes = &v
	}
	if v, ok := c.GetPostForm("user_id"); ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, apperror.BadRequest("Invalid user_id")
		}
		req.UserID = &id
	}
	req.Skills = splitSkills(c.PostForm("skills"))

	return h.saveResumePart(c)
}

// bindCandidatePatchForm builds a partial update from the form fields that
// are actually present.
func (h *CandidateHandler) bindCandidatePatchForm(c *gin.Context, patch *domain.CandidatePatch) error {
	for field, dst := range map[string]**string{
		"full_name":  &patch.FullName,
		"email":      &patch.Email,
		"phone":      &patch.Phone,
		"education":  &patch.Education,
		"experience": &patch.Experience,
		"notes":      &patch.Notes,
		"stage":      &patch.Stage,
	} {
		if v, ok := c.GetPostForm(field); ok {
			*dst = &v
		}
	}
	if v, ok := c.GetPostForm("skills"); ok {
		patch.Skills = splitSkills(v)
	}

	url, err := h.saveResumePart(c)
	if err != nil {
		return err
	}
	if url != nil {
		patch.ResumeURL = url
	}
	return nil
}

// saveResumePart stores the optional "resume" file part, if any.
func (h *CandidateHandler) saveResumePart(c *gin.Context) (*string, error) {
	if _, err := c.FormFile("resume"); err != nil {
		return nil, nil
	}

	name, data, err := h.readUpload(c, "resume")
	if err != nil {
		return nil, err
	}
	if err := upload.ValidateResume(name, data); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	url, err := upload.Save(h.cfg.UploadDir, name, data)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &url, nil
}

// isPipelineRole reports whether the acting user may move candidates
// through the pipeline.
func isPipelineRole(c *gin.Context) bool {
	role := c.GetString(string(domain.KeyUserRole))
	return role == domain.RoleRecruiter || role == domain.RoleAdmin
}

func splitSkills(raw string) []string {
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// readUpload pulls the named file part out of a multipart form and enforces
// the configured size cap.
func (h *CandidateHandler) readUpload(c *gin.Context, field string) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, apperror.BadRequest("A file is required")
	}

	maxBytes := int64(h.cfg.MaxUploadMB) << 20
	if fileHeader.Size > maxBytes {
		return "", nil, apperror.BadRequest("File exceeds the upload size limit")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	if int64(len(data)) > maxBytes {
		return "", nil, apperror.BadRequest("File exceeds the upload size limit")
	}
	return fileHeader.Filename, data, nil
}

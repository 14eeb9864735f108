package emails

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coldmail-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches email routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/emails", h.generate)
}

type emailResponse struct {
	Email string `json:"email"`
}

func (h *Handler) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
		return
	}
	defer file.Close()

	resume, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
		return
	}

	jobDescription := strings.TrimSpace(c.PostForm("job_description"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	email, err := h.Svc.Generate(c.Request.Context(), GenerateRequest{
		Resume:         resume,
		JobDescription: jobDescription,
		APIKey:         c.PostForm("api_key"),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrCredentialAbsent):
			respond.Error(c, http.StatusUnauthorized, "credential_absent", "API key not found. Provide one in the form or configure GROQ_API_KEY.", nil)
		case errors.Is(err, ErrExtractionFailed):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "could not read text from the uploaded PDF", nil)
		case errors.Is(err, ErrRemoteCall):
			respond.Error(c, http.StatusBadGateway, "generation_failed", "email generation failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
		}
		return
	}

	respond.OK(c, emailResponse{Email: email})
}

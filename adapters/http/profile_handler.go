package http

import (
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	exportUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/export"
	mediaUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/media"
	profileUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	imageUseCase   *mediaUC.ProfileImageUseCase
	exportUseCase  *exportUC.ExportUseCase
	logger         logger.Logger
}

func NewProfileHandler(
	uc *profileUC.ProfileUseCase,
	imageUC *mediaUC.ProfileImageUseCase,
	exportUseCase *exportUC.ExportUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		imageUseCase:   imageUC,
		exportUseCase:  exportUseCase,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req profile.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), profileUC.UpdateProfileInput{Profile: &req})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) ResetProfile(c *gin.Context) {
	if err := h.profileUseCase.ExecuteResetProfile(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportImage accepts either a multipart "file" field or a JSON body with a
// source URL/path.
func (h *ProfileHandler) ImportImage(c *gin.Context) {
	var input mediaUC.ImportProfileImageInput

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.Error(apperror.NewInvalidInput("'file' is required", err))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.Error(apperror.NewInternal("failed to open file", err))
			return
		}
		defer file.Close()
		input.File = file
	} else {
		var req ImportImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("'source' is required", err))
			return
		}
		input.Source = req.Source
	}

	output, err := h.imageUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ImportImageResponse{ProfileImage: output.ImageURL})
}

func (h *ProfileHandler) ExportProfile(c *gin.Context) {
	format, err := exportUC.ParseFormat(c.DefaultQuery("format", "pdf"))
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	doc, err := h.exportUseCase.Render(c.Request.Context(), output.Profile, format)
	if err != nil {
		c.Error(err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, doc.MimeType, doc.Body)
}

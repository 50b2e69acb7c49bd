package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	backupUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/backup"
	settingsUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/settings"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type SettingsHandler struct {
	settingsUseCase *settingsUC.SettingsUseCase
	logger          logger.Logger
}

func NewSettingsHandler(uc *settingsUC.SettingsUseCase, log logger.Logger) *SettingsHandler {
	return &SettingsHandler{settingsUseCase: uc, logger: log}
}

func (h *SettingsHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, ToThemeResponse(h.settingsUseCase.Current()))
}

func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	s, err := h.settingsUseCase.Toggle(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToThemeResponse(s))
}

type BackupHandler struct {
	backupUseCase *backupUC.BackupUseCase
	logger        logger.Logger
}

func NewBackupHandler(uc *backupUC.BackupUseCase, log logger.Logger) *BackupHandler {
	return &BackupHandler{backupUseCase: uc, logger: log}
}

func (h *BackupHandler) RunBackup(c *gin.Context) {
	out, err := h.backupUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, BackupResponse{URL: out.URL, PublicID: out.PublicID})
}

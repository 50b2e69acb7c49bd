package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	interviewUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/interview"
	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type InterviewHandler struct {
	interviewUseCase *interviewUC.InterviewUseCase
	logger           logger.Logger
}

func NewInterviewHandler(uc *interviewUC.InterviewUseCase, log logger.Logger) *InterviewHandler {
	return &InterviewHandler{interviewUseCase: uc, logger: log}
}

func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("company, position and date are required", err))
		return
	}

	output, err := h.interviewUseCase.Create(c.Request.Context(), interviewUC.CreateInterviewInput{
		Company:      req.Company,
		Position:     req.Position,
		Date:         req.Date,
		Notes:        req.Notes,
		SetReminder:  req.SetReminder,
		ReminderTime: req.ReminderTime,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, CreateInterviewResponse{
		Interview:         output.Interview,
		ReminderScheduled: output.ReminderScheduled,
	})
}

func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	list := h.interviewUseCase.List(c.Request.Context())
	c.JSON(http.StatusOK, InterviewListResponse{Interviews: list, Total: len(list)})
}

func (h *InterviewHandler) GetInterview(c *gin.Context) {
	iv, err := h.interviewUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	var req UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for interview update", err))
		return
	}

	iv, err := h.interviewUseCase.Update(c.Request.Context(), interviewUC.UpdateInterviewInput{
		ID:               c.Param("id"),
		Company:          req.Company,
		Position:         req.Position,
		Date:             req.Date,
		Notes:            req.Notes,
		PreparationNotes: req.PreparationNotes,
		FollowUpDate:     req.FollowUpDate,
		Questions:        req.questions(),
		TechnicalTopics:  req.technicalTopics(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	if err := h.interviewUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("'status' is required", err))
		return
	}

	id := c.Param("id")
	if err := h.interviewUseCase.UpdateStatus(c.Request.Context(), id, interview.Status(req.Status), req.Feedback); err != nil {
		c.Error(err)
		return
	}
	h.respondWithInterview(c, id)
}

func (h *InterviewHandler) AddQuestion(c *gin.Context) {
	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("'question' is required", err))
		return
	}

	id := c.Param("id")
	if err := h.interviewUseCase.AddQuestion(c.Request.Context(), id, req.Question); err != nil {
		c.Error(err)
		return
	}
	h.respondWithInterview(c, id)
}

func (h *InterviewHandler) AddTechnicalTopic(c *gin.Context) {
	var req AddTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("'topic' is required", err))
		return
	}

	id := c.Param("id")
	if err := h.interviewUseCase.AddTechnicalTopic(c.Request.Context(), id, req.Topic); err != nil {
		c.Error(err)
		return
	}
	h.respondWithInterview(c, id)
}

func (h *InterviewHandler) respondWithInterview(c *gin.Context, id string) {
	iv, err := h.interviewUseCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

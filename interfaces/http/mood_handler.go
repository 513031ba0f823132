package http

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"mood-playlist/domain/dto"
	"mood-playlist/domain/model"
	"mood-playlist/infrastructure/logger"
	"mood-playlist/usecase"

	"github.com/gin-gonic/gin"
)

// Shown whenever analysis fails; internal detail stays in the logs.
const analysisErrorMessage = "Something went wrong while analyzing your mood. Please try again."

// IMoodHandler defines the mood HTTP handlers
type IMoodHandler interface {
	AnalyzeImage(ctx *gin.Context)
	AnalyzeText(ctx *gin.Context)
	SaveMood(ctx *gin.Context)
	ListSavedMoods(ctx *gin.Context)
}

// MoodHandler implements the mood HTTP handlers
type MoodHandler struct {
	moodUseCase  usecase.IMoodUseCase
	savedUseCase usecase.ISavedMoodUseCase
}

// NewMoodHandler creates a new mood handler instance
func NewMoodHandler(moodUseCase usecase.IMoodUseCase, savedUseCase usecase.ISavedMoodUseCase) IMoodHandler {
	return &MoodHandler{moodUseCase: moodUseCase, savedUseCase: savedUseCase}
}

// AnalyzeImage handles POST /mood/image
func (h *MoodHandler) AnalyzeImage(ctx *gin.Context) {
	var req dto.MoodImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	image, err := decodeDataURL(req.Image)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "image must be base64 encoded"})
		return
	}

	response, err := h.moodUseCase.GetMoodPlaylistFromImage(ctx.Request.Context(), image)
	if err != nil {
		h.analysisError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// AnalyzeText handles POST /mood/text
func (h *MoodHandler) AnalyzeText(ctx *gin.Context) {
	var req dto.MoodTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	response, err := h.moodUseCase.GetMoodPlaylistFromText(ctx.Request.Context(), req.Text)
	if err != nil {
		h.analysisError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// SaveMood handles POST /api/mood/save
func (h *MoodHandler) SaveMood(ctx *gin.Context) {
	var req dto.SaveMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "mood is required"})
		return
	}

	userID := ctx.GetString("user_id")
	saved, err := h.savedUseCase.SaveMood(ctx.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrDailySaveLimit) {
			ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "You reached today's save limit"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Failed to save mood")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save mood"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}

// ListSavedMoods handles GET /api/mood/saved
func (h *MoodHandler) ListSavedMoods(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	userID := ctx.GetString("user_id")
	response, err := h.savedUseCase.ListSavedMoods(ctx.Request.Context(), userID, page, pageSize)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to list saved moods")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list saved moods"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

func (h *MoodHandler) analysisError(ctx *gin.Context, err error) {
	logger.GetLogger().WithField("error", err).Error("Mood playlist request failed")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": analysisErrorMessage})
}

// decodeDataURL accepts both a bare base64 string and a full
// "data:image/jpeg;base64,..." data URL.
func decodeDataURL(s string) ([]byte, error) {
	if idx := strings.Index(s, ","); idx != -1 {
		s = s[idx+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}

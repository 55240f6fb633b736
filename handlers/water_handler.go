package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"waterReminderAPI/internal/goal"
	"waterReminderAPI/internal/water"
	"waterReminderAPI/middleware"
	"waterReminderAPI/services"
)

type WaterHandler struct {
	waterService *services.WaterService
}

func NewWaterHandler(waterService *services.WaterService) *WaterHandler {
	return &WaterHandler{
		waterService: waterService,
	}
}

func (h *WaterHandler) LogWater(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req water.LogWaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logEntry, err := h.waterService.CreateLog(ctx, userID, &req)
	if err != nil {
		log.Printf("LogWater Handler: Service error: %v", err)
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "must be a positive integer"):
			respondWithError(w, http.StatusBadRequest, errMsg)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to log water intake")
		}
		return
	}

	middleware.CountWaterLog()
	respondWithJSON(w, http.StatusCreated, logEntry)
}

func (h *WaterHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	daily, err := h.waterService.GetDailyLog(ctx, userID, time.Now())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, daily)
}

func (h *WaterHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")
	if startParam == "" || endParam == "" {
		respondWithError(w, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	startDate, err := time.Parse(water.DateLayout, startParam)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid start_date format, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(water.DateLayout, endParam)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid end_date format, expected YYYY-MM-DD")
		return
	}

	history, err := h.waterService.GetHistory(ctx, userID, startDate, endDate)
	if err != nil {
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "must not be before"):
			respondWithError(w, http.StatusBadRequest, errMsg)
		default:
			respondWithError(w, http.StatusInternalServerError, errMsg)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, history)
}

func (h *WaterHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'period' is required")
		return
	}

	waterStats, err := h.waterService.GetStats(ctx, userID, period)
	if err != nil {
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "invalid period"):
			respondWithError(w, http.StatusBadRequest, "Invalid period. Must be 'weekly' or 'monthly'")
		default:
			respondWithError(w, http.StatusInternalServerError, errMsg)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, waterStats)
}

func (h *WaterHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	st, err := h.waterService.GetStreak(ctx, userID)
	if err != nil {
		errMsg := err.Error()
		switch errMsg {
		case "streak not found":
			respondWithError(w, http.StatusNotFound, "Streak not found")
		default:
			respondWithError(w, http.StatusInternalServerError, errMsg)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, st)
}

func (h *WaterHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	g, err := h.waterService.GetGoal(ctx, userID)
	if err != nil {
		errMsg := err.Error()
		switch errMsg {
		case "goal not found":
			respondWithError(w, http.StatusNotFound, "Goal not found")
		default:
			respondWithError(w, http.StatusInternalServerError, errMsg)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, g)
}

func (h *WaterHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req goal.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	g, err := h.waterService.UpdateGoal(ctx, userID, req.GoalAmount)
	if err != nil {
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "must be a positive integer"):
			respondWithError(w, http.StatusBadRequest, errMsg)
		default:
			respondWithError(w, http.StatusInternalServerError, errMsg)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, g)
}

func (h *WaterHandler) GetGoalAchieved(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	day := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse(water.DateLayout, dateParam)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	status, err := h.waterService.CheckGoalAchieved(ctx, userID, day)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, status)
}

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardResponse struct {
	TotalQuestions    int            `json:"totalQuestions"`
	CorrectAnswers    int            `json:"correctAnswers"`
	Accuracy          int            `json:"accuracy"`
	TotalPoints       int            `json:"totalPoints"`
	CategoryBreakdown []CategoryStat `json:"categoryBreakdown"`
}

// GET /api/progress/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("userID")

		// points come from the user row, not recomputed from history
		var u User
		if err := db.First(&u, "id = ?", uid).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		type answerRow struct {
			IsCorrect bool
			Category  string
		}
		var rows []answerRow
		if err := db.Table("user_answers a").
			Select("a.is_correct as is_correct, q.category as category").
			Joins("JOIN questions q ON q.id = a.question_id").
			Where("a.user_id = ?", uid).
			Order("a.created_at ASC, a.id ASC").
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		correct := 0
		outcomes := make([]categoryOutcome, 0, len(rows))
		for _, r := range rows {
			if r.IsCorrect {
				correct++
			}
			outcomes = append(outcomes, categoryOutcome{Category: r.Category, IsCorrect: r.IsCorrect})
		}

		c.JSON(http.StatusOK, DashboardResponse{
			TotalQuestions:    len(rows),
			CorrectAnswers:    correct,
			Accuracy:          roundPercent(correct, len(rows)),
			TotalPoints:       u.Points,
			CategoryBreakdown: buildCategoryBreakdown(outcomes),
		})
	}
}

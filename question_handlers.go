package main

import (
	"errors"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recentAnswerWindow bounds the repetition-avoidance lookback. A question
// answered more than 20 submissions ago may come up again.
const recentAnswerWindow = 20

// QuestionDTO is the client-facing question shape. CorrectAnswers and
// Explanation are deliberately absent: they are revealed only by SubmitAnswer.
type QuestionDTO struct {
	ID         string         `json:"id"`
	Content    string         `json:"content"`
	Type       string         `json:"type"`
	Category   string         `json:"category"`
	Difficulty string         `json:"difficulty"`
	AllAnswers []AnswerOption `json:"allAnswers"`
}

func toQuestionDTO(q Question) QuestionDTO {
	return QuestionDTO{
		ID:         q.ID,
		Content:    q.Content,
		Type:       q.Type,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		AllAnswers: []AnswerOption(q.AllAnswers),
	}
}

// GET /api/questions/next?category=<optional>
func NextQuestion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("userID")
		category := c.Query("category")

		var recentIDs []string
		if err := db.Model(&UserAnswer{}).
			Where("user_id = ?", uid).
			Order("created_at DESC, id DESC").
			Limit(recentAnswerWindow).
			Pluck("question_id", &recentIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		// fresh chain per statement; gorm statements are not reusable
		candidates := func() *gorm.DB {
			tx := db.Model(&Question{})
			if len(recentIDs) > 0 {
				tx = tx.Where("id NOT IN ?", recentIDs)
			}
			if category != "" {
				tx = tx.Where("category = ?", category)
			}
			return tx
		}

		var count int64
		if err := candidates().Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No questions available"})
			return
		}

		// uniform offset under a stable ordering so the pick is well-defined
		offset := rand.Intn(int(count))
		var q Question
		if err := candidates().Order("id").Offset(offset).First(&q).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No questions available"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"question": toQuestionDTO(q)})
	}
}

type SubmitAnswerReq struct {
	SelectedAnswers []string `json:"selectedAnswers"`
	TimeSpent       int      `json:"timeSpent"`
}

// POST /api/questions/:id/answer
func SubmitAnswer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("userID")
		qid := c.Param("id")

		// an empty array is a valid (incorrect) submission; a missing or
		// null field is not
		var req SubmitAnswerReq
		if err := c.BindJSON(&req); err != nil || req.SelectedAnswers == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer format"})
			return
		}
		if req.TimeSpent < 0 {
			req.TimeSpent = 0
		}

		var q Question
		if err := db.First(&q, "id = ?", qid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		correct := []string(q.CorrectAnswers)
		isCorrect := isCorrectAllOrNothing(req.SelectedAnswers, correct)
		points := pointsForAnswer(q.Type, isCorrect)

		answer := UserAnswer{
			ID:              uuid.New().String(),
			UserID:          uid,
			QuestionID:      q.ID,
			SelectedAnswers: datatypes.JSONSlice[string](req.SelectedAnswers),
			IsCorrect:       isCorrect,
			PointsEarned:    points,
			TimeSpent:       req.TimeSpent,
		}

		// answer row and point increment commit together; the increment is a
		// storage-side add so concurrent submissions cannot lose updates
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
			return tx.Model(&User{}).Where("id = ?", uid).
				UpdateColumn("points", gorm.Expr("points + ?", points)).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit answer"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"isCorrect":      isCorrect,
			"pointsEarned":   points,
			"correctAnswers": correct,
			"explanation":    q.Explanation,
		})
	}
}

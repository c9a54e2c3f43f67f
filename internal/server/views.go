package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/streak"
)

type streakView struct {
	Count    int     `json:"count"`
	LastDate *string `json:"lastDate"`
}

// tasks serves the ordered, filtered task view; ?q= filters by text.
func (s *Server) tasks(c *gin.Context) {
	tasks, err := s.journal.Tasks(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.fail(c, "tasks", err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) schedule(c *gin.Context) {
	items, err := s.journal.Schedule(c.Request.Context())
	if err != nil {
		s.fail(c, "schedule", err)
		return
	}
	if items == nil {
		items = []model.ScheduleItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) memories(c *gin.Context) {
	feed, err := s.journal.Memories(c.Request.Context())
	if err != nil {
		s.fail(c, "memories", err)
		return
	}
	if feed == nil {
		feed = []model.Memory{}
	}
	c.JSON(http.StatusOK, feed)
}

// currentStreak reports the count that is still alive, not the stored one.
func (s *Server) currentStreak(c *gin.Context) {
	rec, err := s.journal.Streak(c.Request.Context())
	if err != nil {
		s.fail(c, "streak", err)
		return
	}
	c.JSON(http.StatusOK, streakView{
		Count:    streak.Current(rec, s.now()),
		LastDate: rec.LastDate,
	})
}

package http

import (
	"github.com/gin-gonic/gin"
)

// GET /api/payables/summary?from=YYYY-MM-DD&to=YYYY-MM-DD
//
// from/to are optional but must come together; a malformed range is
// rejected, never treated as "no filter".
func (s *Server) payablesSummary(c *gin.Context) {
	userID := currentUserID(c)

	from := c.Query("from")
	to := c.Query("to")
	if (from == "") != (to == "") {
		c.JSON(400, gin.H{"error": "from and to must be supplied together"})
		return
	}
	if from != "" && (!validDate(from) || !validDate(to)) {
		c.JSON(400, gin.H{"error": "from and to must be YYYY-MM-DD"})
		return
	}

	summary, err := s.engine.Summary(c.Request.Context(), userID, from, to)
	if err != nil {
		s.log.WithError(err).Error("payables summary failed")
		c.JSON(500, gin.H{"error": "failed to compute summary"})
		return
	}
	c.JSON(200, summary)
}

// GET /api/dashboard
func (s *Server) dashboard(c *gin.Context) {
	userID := currentUserID(c)

	snapshot, err := s.engine.Dashboard(c.Request.Context(), userID)
	if err != nil {
		s.log.WithError(err).Error("dashboard snapshot failed")
		c.JSON(500, gin.H{"error": "failed to compute dashboard"})
		return
	}
	c.JSON(200, snapshot)
}

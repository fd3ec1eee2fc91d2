package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

// pathID parses the :id parameter; on failure it writes a 400 and
// returns false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func today() string {
	return time.Now().Format(dateLayout)
}

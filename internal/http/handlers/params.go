package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/dealdesk-backend/internal/data/repos"
)

func idParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

func pageQuery(c *gin.Context) repos.PageQuery {
	return repos.PageQuery{
		Page:   c.Query("page"),
		Limit:  c.Query("limit"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}
}

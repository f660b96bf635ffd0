package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/sma-schedule-api/internal/dto"
	appErrors "github.com/noah-isme/sma-schedule-api/pkg/errors"
)

// bindJSON decodes and validates a request body.
func bindJSON(c *gin.Context, validate *validator.Validate, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload")
	}
	if validate != nil {
		if err := validate.Struct(dest); err != nil {
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, err.Error())
		}
	}
	return nil
}

// parseListQuery reads list parameters. Only the listing's filterable fields
// are read as filters; other unknown parameters are ignored.
func parseListQuery(c *gin.Context, filterable []string) (dto.ScheduleListQuery, error) {
	q := dto.ScheduleListQuery{
		Search: c.Query("search"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
	}
	for _, field := range filterable {
		if value := strings.TrimSpace(c.Query(field)); value != "" {
			if q.Filters == nil {
				q.Filters = make(map[string]string)
			}
			q.Filters[field] = value
		}
	}

	var err error
	if q.Page, err = positiveQueryInt(c, "page"); err != nil {
		return q, err
	}
	if q.PageSize, err = positiveQueryInt(c, "limit", "pageSize"); err != nil {
		return q, err
	}
	return q, nil
}

// positiveQueryInt returns 0 when none of names is present.
func positiveQueryInt(c *gin.Context, names ...string) (int, error) {
	for _, name := range names {
		raw, ok := c.GetQuery(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be a positive integer")
		}
		return n, nil
	}
	return 0, nil
}

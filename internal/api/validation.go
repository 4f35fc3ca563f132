package api

import (
	"encoding/json"                     // Decode error types
	"errors"                            // Error classification
	"music_library/internal/apperr"     // Typed failures
	"music_library/internal/repository" // Pagination
	"reflect"                           // Struct tag lookup
	"slices"                            // Field de-duplication
	"strconv"                           // Cache key parts
	"strings"                           // Message building
	"sync"                              // One-time registration
	"time"                              // Current year

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // Gin validator engine
	"github.com/go-playground/validator/v10" // Request validation
)

var registerOnce sync.Once

// RegisterValidators reports request fields by their wire names and adds the
// notfuture rule for years. It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(wireName)
		_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
			return fl.Field().Int() <= int64(time.Now().UTC().Year())
		})
	})
}

func wireName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// bindingError turns a gin binding failure into a BadRequest naming the
// offending fields
func bindingError(err error) error {
	var fields []string

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			if !slices.Contains(fields, fe.Field()) {
				fields = append(fields, fe.Field())
			}
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		fields = append(fields, typeErr.Field)
	}

	if len(fields) == 0 {
		return apperr.BadRequest("")
	}
	return apperr.BadRequest("Bad Request, Reason: " + strings.Join(fields, ", ") + ".")
}

// idParam is the :id path parameter
type idParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// bindID validates the :id path parameter
func bindID(c *gin.Context) (string, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		fail(c, bindingError(err))
		return "", false
	}
	return p.ID, true
}

// bindJSON decodes and validates the request body
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, bindingError(err))
		return false
	}
	return true
}

// bindQuery decodes and validates the query string
func bindQuery(c *gin.Context, q any) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		fail(c, bindingError(err))
		return false
	}
	return true
}

// pageQuery holds the pagination parameters shared by every list endpoint
type pageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

func (q pageQuery) page() repository.Page {
	return repository.Page{Limit: q.Limit, Offset: q.Offset}
}

// cacheParts renders the page window as cache key parts
func (q pageQuery) cacheParts() []string {
	p := q.page()
	if p.Limit <= 0 {
		p.Limit = repository.DefaultLimit
	}
	return []string{"l" + strconv.Itoa(p.Limit), "o" + strconv.Itoa(p.Offset)}
}

// parseHidden converts a validated "true"/"false" query value
func parseHidden(s string) *bool {
	if s == "" {
		return nil
	}
	v := s == "true"
	return &v
}

package utils

import (
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/exceptions"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// PaginationBounds clips the requested page window to [0, total]. A page past
// the end yields an empty window, not an error.
func PaginationBounds(total int, pagination *requests.Pagination) (start, end int) {
	start = (pagination.Page - 1) * pagination.PageSize
	if start > total {
		start = total
	}
	end = start + pagination.PageSize
	if end > total {
		end = total
	}
	return start, end
}

// ParseAndValidateBody decodes the request body into dst and runs struct
// validation on it. dst must be a pointer.
func ParseAndValidateBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

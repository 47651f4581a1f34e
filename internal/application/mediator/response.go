package mediator

import (
	"fmt"
	"net/http"
)

// Response is the uniform result envelope returned by every handler.
// A successful response carries data and no notifications; a failed
// response carries at least one notification and no data.
type Response[T any] struct {
	Success       bool           `json:"success"`
	Data          T              `json:"data,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
	Code          int            `json:"code"`
}

// OK creates a successful response with code 200.
func OK[T any](data T) Response[T] {
	return Response[T]{
		Success: true,
		Data:    data,
		Code:    http.StatusOK,
	}
}

// Fail creates a failed response with the default code 400.
// Panics if notifications is empty: a failure without at least one
// notification violates the envelope contract.
func Fail[T any](notifications []Notification) Response[T] {
	return FailWithCode[T](http.StatusBadRequest, notifications)
}

// FailWithCode creates a failed response with a handler-chosen code,
// e.g. 404 for a missing entity. Panics if notifications is empty.
func FailWithCode[T any](code int, notifications []Notification) Response[T] {
	if len(notifications) == 0 {
		panic("mediator: failure response requires at least one notification")
	}
	return Response[T]{
		Success:       false,
		Notifications: notifications,
		Code:          code,
	}
}

// PagedResponse is the result envelope for paged queries. It adds page
// bookkeeping to Response; the data is one page of items.
type PagedResponse[T any] struct {
	Response[[]T]

	TotalCount int64 `json:"total_count"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// PagedOK creates a successful paged response with code 200 and
// TotalPages computed as ceil(totalCount / pageSize).
// Panics if pageNumber < 1, pageSize < 1 or totalCount < 0: page
// arithmetic on such values is a caller bug, not a runtime condition.
func PagedOK[T any](items []T, totalCount int64, pageNumber, pageSize int) PagedResponse[T] {
	if pageNumber < 1 || pageSize < 1 {
		panic(fmt.Sprintf("mediator: invalid page arguments (pageNumber=%d, pageSize=%d)", pageNumber, pageSize))
	}
	if totalCount < 0 {
		panic(fmt.Sprintf("mediator: negative totalCount %d", totalCount))
	}
	return PagedResponse[T]{
		Response:   OK(items),
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: int((totalCount + int64(pageSize) - 1) / int64(pageSize)),
	}
}

// PagedFail creates a failed paged response with the default code 400.
// Panics if notifications is empty.
func PagedFail[T any](notifications []Notification) PagedResponse[T] {
	return PagedFailWithCode[T](http.StatusBadRequest, notifications)
}

// PagedFailWithCode creates a failed paged response with a
// handler-chosen code. Panics if notifications is empty.
func PagedFailWithCode[T any](code int, notifications []Notification) PagedResponse[T] {
	return PagedResponse[T]{
		Response: FailWithCode[[]T](code, notifications),
	}
}

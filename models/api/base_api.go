package apimodels

import "github.com/Aaron071982/riseandshineHRM-final-sub000/models"

type Response struct {
	Status    string           `json:"status"`               // fail/success
	Message   string           `json:"message,omitempty"`    // error text for the user
	ErrorKind models.ErrorKind `json:"error_kind,omitempty"` // machine-readable error category
	Data      interface{}      `json:"data,omitempty"`
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` // total rows matching the filter
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewErrorWithKind(kind models.ErrorKind, message string) Response {
	return Response{
		Status:    "fail",
		Message:   message,
		ErrorKind: kind,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // rows per page
	Page  int `json:"page"`  // page number starting at 1
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

package http

import (
	"net/http"

	"github.com/hrlite/crm-backend-go/internal/domain/report"
	"github.com/hrlite/crm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Overview implements ReportHandler
func (h *reportHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

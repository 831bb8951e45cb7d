package dto

import (
	"maree/internal/domain/demand"
	"maree/internal/domain/notify"
)

// --- Response DTOs ---

// ReportResponse wraps a demand report with its text rendering.
type ReportResponse struct {
	Report demand.Report `json:"report"`
	Text   string        `json:"text"`
}

// FromReport creates response DTO from a demand report.
func FromReport(report demand.Report) *ReportResponse {
	return &ReportResponse{
		Report: report,
		Text:   notify.RenderText(report),
	}
}

// RunResultResponse is one holiday's outcome of a pipeline run.
type RunResultResponse struct {
	Holiday demand.HolidayMeta `json:"holiday"`
	Report  *demand.Report     `json:"report,omitempty"`

	Error          string            `json:"error,omitempty"`
	DeliveryErrors map[string]string `json:"deliveryErrors,omitempty"`
}

// FromRunResults maps pipeline run results to response DTOs.
func FromRunResults(results []notify.RunResult) []RunResultResponse {
	out := make([]RunResultResponse, 0, len(results))
	for _, r := range results {
		resp := RunResultResponse{
			Holiday: r.Holiday,
			Report:  r.Report,
		}
		if r.Err != nil {
			resp.Error = r.Err.Error()
		}
		if len(r.DeliveryErrs) > 0 {
			resp.DeliveryErrors = make(map[string]string, len(r.DeliveryErrs))
			for channel, err := range r.DeliveryErrs {
				resp.DeliveryErrors[channel] = err.Error()
			}
		}
		out = append(out, resp)
	}
	return out
}

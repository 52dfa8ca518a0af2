package api

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

// ClassReport fetches per-student attendance/attentiveness aggregates for a
// class.
func (c *Client) ClassReport(ctx context.Context, classID string) ([]state.StudentReport, error) {
	var reports []state.StudentReport
	if err := c.get(ctx, fmt.Sprintf("/classes/%s/reports", classID), &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// StudentReport fetches one student's aggregate report.
func (c *Client) StudentReport(ctx context.Context, classID, studentID string) (state.StudentReport, error) {
	var report state.StudentReport
	if err := c.get(ctx, fmt.Sprintf("/classes/%s/reports/student/%s", classID, studentID), &report); err != nil {
		return state.StudentReport{}, err
	}
	return report, nil
}

// ExportReportCSV streams the server-rendered CSV export into w.
func (c *Client) ExportReportCSV(ctx context.Context, classID string, query url.Values, w io.Writer) error {
	return c.download(ctx, fmt.Sprintf("/classes/%s/reports/export/csv", classID), query, w)
}

// ExportReportPDF streams the server-rendered PDF export into w.
func (c *Client) ExportReportPDF(ctx context.Context, classID string, query url.Values, w io.Writer) error {
	return c.download(ctx, fmt.Sprintf("/classes/%s/reports/export/pdf", classID), query, w)
}

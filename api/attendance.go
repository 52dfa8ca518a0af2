package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

// MarkAttendance submits a full attendance sheet for one class sitting.
func (c *Client) MarkAttendance(ctx context.Context, classID string, sheet state.AttendanceSheet) error {
	return c.post(ctx, fmt.Sprintf("/classes/%s/attendance", classID), sheet, nil)
}

// Attendance fetches a class's attendance records, optionally for one date
// (YYYY-MM-DD).
func (c *Client) Attendance(ctx context.Context, classID, date string) ([]state.AttendanceEntry, error) {
	path := fmt.Sprintf("/classes/%s/attendance", classID)
	if date != "" {
		path += "?" + url.Values{"date": {date}}.Encode()
	}
	var list []state.AttendanceEntry
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateAttendance corrects a single attendance record.
func (c *Client) UpdateAttendance(ctx context.Context, classID, attendanceID string, mark state.AttendanceMark) error {
	return c.put(ctx, fmt.Sprintf("/classes/%s/attendance/%s", classID, attendanceID), mark, nil)
}

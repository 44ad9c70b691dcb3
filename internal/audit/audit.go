package audit

import "context"

// Action names are stable identifiers; downstream forensic tooling greps on
// them, so they never change once shipped.
const (
	ActionPushSuccess      = "ADMS_PUSH_SUCCESS"
	ActionPushRejected     = "ADMS_PUSH_REJECTED"
	ActionAttendanceDelete = "DELETE_ATTENDANCE"
	ActionViewAttendance   = "VIEW_ATTENDANCE"
	ActionViewSummary      = "VIEW_ATTENDANCE_SUMMARY"
	ActionViewMonthly      = "VIEW_MONTHLY_REPORT"
	ActionViewDashboard    = "VIEW_DASHBOARD"
	ActionExport           = "EXPORT_ATTENDANCE"
	ActionDeviceCreate     = "DEVICE_CREATE"
	ActionDeviceUpdate     = "DEVICE_UPDATE"
	ActionDeviceDeactivate = "DEVICE_DEACTIVATE"
	ActionServerShutdown   = "SERVER_SHUTDOWN"
)

type Entry struct {
	Action  string
	Actor   string // admin id atau device id, kosong jika tidak dikenal
	Message string
	Meta    map[string]any
}

//go:generate mockgen -source=audit.go -destination=mock/audit_mock.go -package=mock
type Sink interface {
	Record(ctx context.Context, entry Entry)
}

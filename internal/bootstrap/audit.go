package bootstrap

import "context"

// AuditLog is one operational event worth keeping outside the request logs.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

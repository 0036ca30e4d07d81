package ctxutil

import "context"

type traceDataKey struct{}

type TraceData struct {
	RequestID string
	// TeacherID is the resolved actor for the request, when the boundary
	// provided one. Zero means anonymous.
	TeacherID uint
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}

package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// CheckerFor returns v's own health check when it has one.
func CheckerFor(v any) HealthChecker {
	if hc, ok := v.(HealthChecker); ok {
		return hc
	}
	return NewOkHealthChecker()
}

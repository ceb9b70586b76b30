// Package logging emits the audit records every request path is required
// to produce: one line when a request arrives and one when the operation
// finishes, carrying the crud method, traffic direction, node ip, outcome
// and status code.
package logging

import (
	"net"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"

	TrafficIn  = "in"
	TrafficOut = "out"
)

// Audit wraps a zap logger with the fixed fields of the audit record.
type Audit struct {
	log  *zap.Logger
	name string
	ip   string
}

// New builds an Audit logger writing JSON to stdout. When shipperAddr is
// non-empty a second core streams the same records to the log shipper
// over TCP; an unreachable shipper is not fatal.
func New(service, shipperAddr string) *Audit {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(os.Stdout), zap.InfoLevel),
	}
	if shipperAddr != "" {
		if conn, err := net.DialTimeout("tcp", shipperAddr, 3*time.Second); err == nil {
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(conn), zap.InfoLevel))
		}
	}

	return &Audit{
		log:  zap.New(zapcore.NewTee(cores...)),
		name: service,
		ip:   nodeIP(),
	}
}

// NewNop returns an Audit that discards everything. For tests.
func NewNop() *Audit {
	return &Audit{log: zap.NewNop(), name: "test", ip: "127.0.0.1"}
}

// With returns a derived Audit carrying the request id on every record.
func (a *Audit) With(requestID string) *Audit {
	return &Audit{
		log:  a.log.With(zap.String("request_id", requestID)),
		name: a.name,
		ip:   a.ip,
	}
}

// Setup records a lifecycle event outside any request (startup,
// readiness).
func (a *Audit) Setup(msg string) {
	a.log.Info(msg, zap.String("name", a.name))
}

// In records the arrival of a request before the operation runs.
func (a *Audit) In(method, msg string) {
	a.log.Info(msg,
		zap.String("name", a.name),
		zap.String("method", method),
		zap.String("traffic", TrafficIn),
		zap.String("ip", a.ip),
	)
}

// Out records the outcome of an operation. Failures log at warn level.
func (a *Audit) Out(method, status string, code int, msg string) {
	fields := []zap.Field{
		zap.String("name", a.name),
		zap.String("method", method),
		zap.String("traffic", TrafficOut),
		zap.String("ip", a.ip),
		zap.String("status", status),
		zap.Int("code", code),
	}
	if status == StatusFail {
		a.log.Warn(msg, fields...)
		return
	}
	a.log.Info(msg, fields...)
}

// Sync flushes buffered records. Called on shutdown.
func (a *Audit) Sync() error {
	return a.log.Sync()
}

func nodeIP() string {
	host, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupHost(host)
	if err != nil || len(addrs) == 0 {
		return "127.0.0.1"
	}
	return addrs[0]
}

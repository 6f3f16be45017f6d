package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// SlogTextHandler formats records as a right-padded level and the message followed by the attributes
// in the standard slog text format:
//
//	LEVEL MESSAGE key1=value1 key2=value2
type SlogTextHandler struct {
	mu *sync.Mutex
	w  io.Writer
	// buf collects the attributes formatted by text for the record being handled.
	buf  *bytes.Buffer
	text slog.Handler
}

func NewSlogTextHandler(w io.Writer, opts *slog.HandlerOptions) *SlogTextHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	textOpts := *opts
	// Remove time, level, and message from the default attributes as they are written separately.
	textOpts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
			return slog.Attr{}
		}
		if opts.ReplaceAttr != nil {
			return opts.ReplaceAttr(groups, a)
		}
		return a
	}

	buf := &bytes.Buffer{}
	return &SlogTextHandler{
		mu:   &sync.Mutex{},
		w:    w,
		buf:  buf,
		text: slog.NewTextHandler(buf, &textOpts),
	}
}

func (h *SlogTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.text.Enabled(ctx, level)
}

func (h *SlogTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SlogTextHandler{mu: h.mu, w: h.w, buf: h.buf, text: h.text.WithAttrs(attrs)}
}

func (h *SlogTextHandler) WithGroup(name string) slog.Handler {
	return &SlogTextHandler{mu: h.mu, w: h.w, buf: h.buf, text: h.text.WithGroup(name)}
}

func (h *SlogTextHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if err := h.text.Handle(ctx, r); err != nil {
		return err
	}
	attrs := bytes.TrimSpace(h.buf.Bytes())

	line := fmt.Sprintf("%-5s %s", r.Level.String(), r.Message)
	if len(attrs) > 0 {
		line += " " + string(attrs)
	}
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

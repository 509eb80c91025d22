package network

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/leengari/csvjoin/internal/domain/errors"
	"github.com/leengari/csvjoin/internal/domain/schema"
	"github.com/leengari/csvjoin/internal/engine"
)

// Request asks the service to join two tables on a column
type Request struct {
	Left  *schema.Table `json:"left"`
	Right *schema.Table `json:"right"`
	Key   string        `json:"key"`
}

// Response carries either the joined table or an error
type Response struct {
	Table *schema.Table `json:"table,omitempty"`
	Error string        `json:"error,omitempty"`
	Kind  string        `json:"kind,omitempty"` // missing_column, index_out_of_bounds, invalid_request
}

// Start starts the TCP join server
func Start(port int, eng *engine.Engine) error {
	addr := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("Failed to bind to port", "port", port, "error", err)
		return err
	}
	defer listener.Close()

	slog.Info("Running on port", "port", port)
	return Serve(listener, eng)
}

// Serve accepts connections until the listener is closed
func Serve(listener net.Listener, eng *engine.Engine) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if stderrors.Is(err, net.ErrClosed) {
				return nil
			}
			slog.Error("Failed to accept connection", "error", err)
			continue
		}
		go handleConnection(conn, eng)
	}
}

func handleConnection(conn net.Conn, eng *engine.Engine) {
	defer conn.Close()

	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return // Connection closed gracefully
			}
			slog.Error("decode error", "error", err)

			_ = encoder.Encode(&Response{
				Error: fmt.Sprintf("Invalid request format: %v", err),
				Kind:  "invalid_request",
			})
			return
		}

		if err := encoder.Encode(handleRequest(eng, &req)); err != nil {
			slog.Error("encode error", "error", err)
			return
		}
	}
}

// handleRequest validates and runs a single join request
func handleRequest(eng *engine.Engine, req *Request) *Response {
	if req.Left == nil || req.Right == nil {
		return &Response{Error: "request needs both left and right tables", Kind: "invalid_request"}
	}
	if req.Key == "" {
		return &Response{Error: "request needs a join key", Kind: "invalid_request"}
	}
	for _, t := range []*schema.Table{req.Left, req.Right} {
		if err := t.Validate(); err != nil {
			return &Response{Error: err.Error(), Kind: "invalid_request"}
		}
	}

	out, err := eng.InnerJoin(req.Left, req.Right, req.Key)
	if err != nil {
		return &Response{Error: err.Error(), Kind: errorKind(err)}
	}
	return &Response{Table: out}
}

func errorKind(err error) string {
	var missing *errors.MissingColumnError
	var oob *errors.IndexOutOfBoundsError
	switch {
	case stderrors.As(err, &missing):
		return "missing_column"
	case stderrors.As(err, &oob):
		return "index_out_of_bounds"
	default:
		return "internal"
	}
}

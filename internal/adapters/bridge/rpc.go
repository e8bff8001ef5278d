package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

// backendExitTimeout is how long Close waits for the backend process before killing it
const backendExitTimeout = 3 * time.Second

// RPCBridge invokes commands on a backend speaking JSON-RPC 2.0 with
// Content-Length framing, usually over the stdio of a subprocess.
type RPCBridge struct {
	closeErr  error
	closeOnce sync.Once
	cmd       *exec.Cmd
	conn      *jsonrpc2.Conn
}

// Dial starts the backend command line and connects to its stdin and stdout
func Dial(ctx context.Context, commandLine []string) (*RPCBridge, error) {
	if len(commandLine) == 0 {
		return nil, errors.New("backend command line is empty")
	}

	// The process lifetime is bound to Close, not to ctx
	cmd := exec.Command(commandLine[0], commandLine[1:]...)
	cmd.Env = os.Environ()
	cmd.Stderr = &stderrLogger{command: commandLine[0]}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open backend stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open backend stdout: %w", err)
	}

	logging.Logger.Info("Starting backend", "command", strings.Join(commandLine, " "))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start backend: %w", err)
	}

	b := NewRPCBridge(ctx, Transport(stdout, stdin))
	b.cmd = cmd
	return b, nil
}

// NewRPCBridge speaks JSON-RPC over an established stream
func NewRPCBridge(ctx context.Context, rwc io.ReadWriteCloser) *RPCBridge {
	b := &RPCBridge{}
	b.conn = jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(b.handleNotification))
	return b
}

// Invoke sends command as a JSON-RPC request and waits for its result
func (b *RPCBridge) Invoke(ctx context.Context, command string, args ports.Args) (json.RawMessage, error) {
	select {
	case <-b.conn.DisconnectNotify():
		return nil, fmt.Errorf("%s: %w", command, ErrBackendClosed)
	default:
	}

	var result json.RawMessage
	if err := b.conn.Call(ctx, command, args, &result); err != nil {
		var rpcErr *jsonrpc2.Error
		if errors.As(err, &rpcErr) {
			return nil, &RemoteError{
				Code:    rpcErr.Code,
				Command: command,
				Message: rpcErr.Message,
			}
		}
		if errors.Is(err, jsonrpc2.ErrClosed) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%s: %w", command, ErrBackendClosed)
		}
		return nil, fmt.Errorf("%s: %w", command, err)
	}
	return result, nil
}

// Done is closed when the backend disconnects
func (b *RPCBridge) Done() <-chan struct{} {
	return b.conn.DisconnectNotify()
}

// Close disconnects from the backend and waits for its process to exit
func (b *RPCBridge) Close() error {
	b.closeOnce.Do(func() {
		if err := b.conn.Close(); err != nil && !errors.Is(err, jsonrpc2.ErrClosed) {
			b.closeErr = fmt.Errorf("failed to close backend connection: %w", err)
		}
		if b.cmd == nil {
			return
		}

		exited := make(chan error, 1)
		go func() { exited <- b.cmd.Wait() }()

		select {
		case err := <-exited:
			if err != nil {
				logging.Logger.Warn("Backend exited with error", "error", err)
			}
		case <-time.After(backendExitTimeout):
			logging.Logger.Warn("Backend did not exit, killing it", "pid", b.cmd.Process.Pid)
			if err := b.cmd.Process.Kill(); err != nil {
				b.closeErr = errors.Join(b.closeErr, fmt.Errorf("failed to kill backend: %w", err))
			}
			<-exited
		}
	})
	return b.closeErr
}

// handleNotification logs requests initiated by the backend; none are served
func (b *RPCBridge) handleNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	logging.Logger.Debug("Backend message", "method", req.Method, "notification", req.Notif)
	if req.Notif {
		return nil, nil
	}
	return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
}

// Serve answers JSON-RPC requests on rwc with router until the peer
// disconnects or ctx is cancelled.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, router *Router) error {
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.AsyncHandler(router.RPCHandler()))

	select {
	case <-conn.DisconnectNotify():
		return nil
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	}
}

// RPCHandler exposes the router as a JSON-RPC handler
func (r *Router) RPCHandler() jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		var args ports.Args
		if req.Params != nil {
			if err := json.Unmarshal(*req.Params, &args); err != nil {
				return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
			}
		}

		result, err := r.Invoke(ctx, req.Method, args)
		if errors.Is(err, ErrUnknownCommand) {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: err.Error()}
		}
		if err != nil {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: err.Error()}
		}
		return result, nil
	})
}

// Transport joins a reader and a writer into one stream
func Transport(in io.ReadCloser, out io.WriteCloser) io.ReadWriteCloser {
	return transport{in: in, out: out}
}

type transport struct {
	in  io.ReadCloser
	out io.WriteCloser
}

func (t transport) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t transport) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t transport) Close() error {
	if err := t.in.Close(); err != nil {
		t.out.Close()
		return err
	}
	return t.out.Close()
}

// stderrLogger forwards backend stderr output to the log
type stderrLogger struct {
	command string
}

func (w *stderrLogger) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			logging.Logger.Debug("Backend stderr", "command", w.command, "line", line)
		}
	}
	return len(p), nil
}

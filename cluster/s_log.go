package cluster

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	pb "github.com/atcbosselut/myria/internal/rpc"
	"github.com/atcbosselut/myria/logging"
)

type logServer struct {
}

// createLogServer creates a log server
func createLogServer() *logServer {
	return &logServer{}
}

// Log messages to the console coming from workers
func (s *logServer) Log(stream pb.LogService_LogServer) error {
	var count int32
	for {
		message, err := stream.Recv()
		if err == io.EOF {
			// Then we're out of messages to print and no errors have occurred, so Ack
			return stream.SendAndClose(&pb.MLogMsgAck{Time: time.Now().Unix(), Count: count})
		} else if err != nil {
			return err
		}
		count++
		log.Printf("%s: %s: %s", message.GetSource(), logging.LogLevelToString(int(message.GetLevel())), message.GetMessage())
	}
}

// remoteLogger forwards a worker's log messages to the coordinator's log
// service over a single long-lived stream
type remoteLogger struct {
	lock   sync.Mutex
	source string
	client pb.LogServiceClient
	stream pb.LogService_LogClient
}

// createRemoteLogger creates a remoteLogger identifying itself as source
func createRemoteLogger(client pb.LogServiceClient, source string) *remoteLogger {
	return &remoteLogger{source: source, client: client}
}

// Logf sends one formatted message at the given level
func (r *remoteLogger) Logf(level int, format string, args ...interface{}) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.stream == nil {
		stream, err := r.client.Log(context.Background())
		if err != nil {
			return err
		}
		r.stream = stream
	}
	return r.stream.Send(&pb.MLogMsg{
		Level:   int32(level),
		Source:  r.source,
		Message: fmt.Sprintf(format, args...),
	})
}

// close flushes the stream and waits for the coordinator's ack
func (r *remoteLogger) close() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.stream == nil {
		return nil
	}
	_, err := r.stream.CloseAndRecv()
	r.stream = nil
	return err
}

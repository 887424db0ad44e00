package cluster

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/exchange"
	pb "github.com/atcbosselut/myria/internal/rpc"
	istats "github.com/atcbosselut/myria/internal/stats"
	"github.com/atcbosselut/myria/tuplebatch"
	"google.golang.org/grpc"
)

// exchangeServer routes inbound exchange traffic into the inboxes
// registered on this worker
type exchangeServer struct {
	registry *exchange.Registry
	stats    *istats.ExchangeStatistics
}

// createExchangeServer creates a new exchangeServer
func createExchangeServer(registry *exchange.Registry, stats *istats.ExchangeStatistics) *exchangeServer {
	return &exchangeServer{registry: registry, stats: stats}
}

// Deliver receives a stream of exchange messages from one producing worker
// and routes each into the inbox registered for its exchange id. Batch
// payloads are decoded against the inbox's schema, so a producer/consumer
// schema disagreement surfaces here as a decode failure.
func (s *exchangeServer) Deliver(stream pb.ExchangeService_DeliverServer) error {
	var count int32
	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			return stream.SendAndClose(&pb.MDeliverAck{Time: time.Now().Unix(), Count: count})
		} else if err != nil {
			return err
		}
		count++
		pairID := myria.ExchangePairID(msg.ExchangeId)
		source := myria.WorkerID(msg.SourceWorkerId)
		inbox, err := s.registry.Lookup(pairID)
		if err != nil {
			return err
		}
		if msg.Eos {
			s.stats.CountEOS(pairID, source)
			if err := inbox.Deliver(stream.Context(), exchange.CreateEOSMessage(pairID, source)); err != nil {
				return err
			}
			continue
		}
		batch, err := tuplebatch.FromBytes(msg.Payload, inbox.Schema())
		if err != nil {
			return err
		}
		s.stats.CountBatch(pairID, source, batch.NumValidRows(), len(msg.Payload))
		if err := inbox.Deliver(stream.Context(), exchange.CreateDataMessage(pairID, source, batch)); err != nil {
			return err
		}
	}
}

// remoteSink carries exchange messages to a consumer on another worker over
// a gRPC delivery stream. It implements exchange.Sink, so producers treat
// remote and in-process destinations identically.
type remoteSink struct {
	lock   sync.Mutex
	stream pb.ExchangeService_DeliverClient
}

// createRemoteSink opens a delivery stream on an established connection
func createRemoteSink(ctx context.Context, conn *grpc.ClientConn) (*remoteSink, error) {
	client := pb.NewExchangeServiceClient(conn)
	stream, err := client.Deliver(ctx)
	if err != nil {
		return nil, err
	}
	return &remoteSink{stream: stream}, nil
}

// Deliver encodes and sends one exchange message on the stream
func (r *remoteSink) Deliver(ctx context.Context, m exchange.Message) error {
	msg := &pb.MExchangeMessage{
		ExchangeId:     string(m.PairID),
		SourceWorkerId: int32(m.Source),
		Eos:            m.IsEOS(),
	}
	if !m.IsEOS() {
		payload, err := tuplebatch.ToBytes(m.Batch)
		if err != nil {
			return err
		}
		msg.Payload = payload
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.stream.Send(msg)
}

// shutdown closes the delivery stream and waits for the receiving worker's
// ack
func (r *remoteSink) shutdown() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.stream.CloseAndRecv()
	return err
}

package cluster

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/exchange"
	pb "github.com/atcbosselut/myria/internal/rpc"
	istats "github.com/atcbosselut/myria/internal/stats"
	iutil "github.com/atcbosselut/myria/internal/util"
	"github.com/atcbosselut/myria/logging"
	uuid "github.com/gofrs/uuid"
	"google.golang.org/grpc"
)

type worker struct {
	id            string
	workerID      myria.WorkerID
	opts          *NodeOptions
	server        *grpc.Server
	lifecycleLock sync.Mutex
	clusterClient pb.ClusterServiceClient
	logClient     pb.LogServiceClient
	logger        *remoteLogger
	registry      *exchange.Registry
	stats         *istats.ExchangeStatistics
	jobFinishedWg sync.WaitGroup
}

// createWorker is a factory for Workers
func createWorker(opts *NodeOptions) (*worker, error) {
	// default certain options if not supplied
	ensureDefaultNodeOptionsValues(opts)
	// generate worker ID
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID: %v", err)
	}
	return &worker{
		id:       id.String(),
		workerID: -1, // assigned by the coordinator during registration
		opts:     opts,
		registry: exchange.CreateRegistry(),
		stats:    istats.CreateExchangeStatistics(),
	}, nil
}

func (w *worker) mconnect() (*grpc.ClientConn, error) {
	// start client
	conn, err := grpc.Dial(w.opts.coordinatorConnectionString(), grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("fail to dial: %v", err)
	}
	w.logClient = pb.NewLogServiceClient(conn)
	w.clusterClient = pb.NewClusterServiceClient(conn)
	return conn, nil
}

func (w *worker) register() error {
	ctx, cancel := context.WithTimeout(context.Background(), w.opts.RPCTimeout)
	defer cancel()
	req := pb.MRegisterRequest{
		Id:   w.id,
		Port: int32(w.opts.Port),
	}
	if w.clusterClient == nil {
		log.Fatalf("Cannot register before dialing the coordinator with mconnect()")
	}
	res, err := w.clusterClient.RegisterWorker(ctx, &req)
	if err != nil {
		return err
	}
	w.workerID = myria.WorkerID(res.AssignedWorkerId)
	return nil
}

// ID returns the uuid of this worker
func (w *worker) ID() string {
	return w.id
}

// WorkerID returns the integer id assigned during registration, or -1
// before registration completes. This is the id stamped on every exchange
// message the worker sends.
func (w *worker) WorkerID() myria.WorkerID {
	return w.workerID
}

// Registry returns the exchange registry consumers on this worker register
// their inboxes with
func (w *worker) Registry() *exchange.Registry {
	return w.registry
}

// Stats returns per-exchange traffic counters for this worker
func (w *worker) Stats() *istats.ExchangeStatistics {
	return w.stats
}

// InboxCapacity returns the per-exchange buffering bound configured for
// this worker
func (w *worker) InboxCapacity() int {
	return w.opts.InboxCapacity
}

// IsCoordinator returns false for workers
func (w *worker) IsCoordinator() bool {
	return false
}

// Start the worker - will block the current thread
func (w *worker) Start() error {
	// connect to coordinator
	conn, err := w.mconnect()
	if err != nil {
		return err
	}
	defer conn.Close()
	// start worker server
	lis, err := net.Listen("tcp", w.opts.connectionString())
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}
	w.lifecycleLock.Lock()
	w.server = grpc.NewServer()
	w.lifecycleLock.Unlock()
	// register rpc handlers for exchange traffic
	pb.RegisterLifecycleServiceServer(w.server, createLifecycleServer(w))
	pb.RegisterExchangeServiceServer(w.server, createExchangeServer(w.registry, w.stats))
	// register with the coordinator after we are serving
	ctx, cancel := context.WithTimeout(context.Background(), w.opts.RPCTimeout)
	defer cancel()
	var wg sync.WaitGroup
	wg.Add(1)
	asyncErrors := iutil.CreateAsyncErrorChannel()
	go w.asyncRegisterWithCoordinator(ctx, &wg, asyncErrors)
	if err = iutil.WaitAndFetchError(&wg, asyncErrors); err != nil {
		return err
	}
	w.logger = createRemoteLogger(w.logClient, w.id)
	defer w.logger.close()
	if err := w.logger.Logf(logging.InfoLevel, "worker %s serving exchanges as worker %d", w.id, w.workerID); err != nil {
		log.Printf("unable to reach the coordinator log service: %v", err)
	}
	// start server
	w.jobFinishedWg.Add(1)
	err = w.server.Serve(lis)
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}
	// finished
	w.jobFinishedWg.Done()
	return nil
}

// GracefulStop the worker, waiting for RPCs to finish
func (w *worker) GracefulStop() error {
	w.lifecycleLock.Lock()
	defer w.lifecycleLock.Unlock()
	if w.server != nil {
		w.server.GracefulStop()
		w.server = nil
	}
	return nil
}

// Stop the worker immediately
func (w *worker) Stop() error {
	w.lifecycleLock.Lock()
	defer w.lifecycleLock.Unlock()
	if w.server != nil {
		w.server.Stop()
		w.server = nil
	}
	return nil
}

// Run blocks until the worker is shut down
func (w *worker) Run(ctx context.Context) ([]myria.WorkerID, error) {
	w.jobFinishedWg.Wait()
	return nil, nil
}

// Roster fetches the cluster roster from the coordinator
func (w *worker) Roster(ctx context.Context) ([]*pb.MWorkerDescriptor, error) {
	if w.clusterClient == nil {
		return nil, fmt.Errorf("cannot fetch the roster before connecting to the coordinator")
	}
	res, err := w.clusterClient.GetRoster(ctx, &pb.MRosterRequest{})
	if err != nil {
		return nil, err
	}
	return res.Workers, nil
}

// OpenRemoteSink opens an exchange delivery stream to the given peer
// worker, for use as a producer destination. The returned closer shuts the
// stream down once the producer has closed the exchange.
func (w *worker) OpenRemoteSink(ctx context.Context, peer myria.WorkerID) (exchange.Sink, func() error, error) {
	roster, err := w.Roster(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, desc := range roster {
		if myria.WorkerID(desc.WorkerId) == peer {
			conn, err := dialWorker(desc)
			if err != nil {
				return nil, nil, err
			}
			sink, err := createRemoteSink(ctx, conn)
			if err != nil {
				conn.Close()
				return nil, nil, err
			}
			closer := func() error {
				err := sink.shutdown()
				conn.Close()
				return err
			}
			return sink, closer, nil
		}
	}
	return nil, nil, fmt.Errorf("worker %d is not in the cluster roster", peer)
}

// asyncRegisterWithCoordinator retries registration until the coordinator
// accepts it or retries run out
func (w *worker) asyncRegisterWithCoordinator(ctx context.Context, wg *sync.WaitGroup, errors chan<- error) {
	defer wg.Done()
	for retries := 0; retries < w.opts.WorkerJoinRetries; retries++ {
		// Wait for server to register
		err := w.register()
		if err != nil && retries >= w.opts.WorkerJoinRetries-1 {
			errors <- err
		} else if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			errors <- ctx.Err()
		case <-time.After(time.Second):
			// Wait 1 second and check again (iterate)
		}
	}
}

package cluster

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/atcbosselut/myria"
	pb "github.com/atcbosselut/myria/internal/rpc"
	iutil "github.com/atcbosselut/myria/internal/util"
	"google.golang.org/grpc"
)

// coordinator is a Coordinator node which has lifecycle methods
type coordinator struct {
	opts              *NodeOptions
	server            *grpc.Server
	clusterServer     *clusterServer
	bootstrappingLock sync.Mutex
}

func createCoordinator(opts *NodeOptions) (*coordinator, error) {
	// default certain options if not supplied
	ensureDefaultNodeOptionsValues(opts)
	res := &coordinator{opts: opts, clusterServer: createClusterServer(opts)}
	res.bootstrappingLock.Lock() // lock node as bootstrapping immediately
	return res, nil
}

// IsCoordinator returns true for coordinators
func (c *coordinator) IsCoordinator() bool {
	return true
}

// Start the Coordinator - blocking unless run in a goroutine
func (c *coordinator) Start() error {
	// start server
	lis, err := net.Listen("tcp", c.opts.connectionString())
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}
	c.server = grpc.NewServer()
	// register rpc handlers
	pb.RegisterClusterServiceServer(c.server, c.clusterServer)
	pb.RegisterLogServiceServer(c.server, createLogServer())
	// we're done bootstrapping
	c.bootstrappingLock.Unlock()
	// start server
	log.Printf("Starting Myria Coordinator at %s", c.opts.coordinatorConnectionString())
	err = c.server.Serve(lis)
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}
	return nil
}

// GracefulStop the Coordinator, waiting for RPCs to finish
func (c *coordinator) GracefulStop() error {
	if c.server != nil {
		c.server.GracefulStop()
	}
	return nil
}

// Stop the Coordinator immediately
func (c *coordinator) Stop() error {
	if c.server != nil {
		c.server.Stop()
	}
	return nil
}

// Run blocks until the full worker roster has registered, returning the
// assigned worker ids in assignment order. Query plans rendezvous on these
// ids: every exchange roster is a subset of them.
func (c *coordinator) Run(ctx context.Context) ([]myria.WorkerID, error) {
	c.bootstrappingLock.Lock()
	defer c.bootstrappingLock.Unlock()

	waitCtx, cancel := context.WithTimeout(ctx, c.opts.WorkerJoinTimeout)
	defer cancel()
	log.Printf("Waiting for %d workers to connect...", c.opts.NumWorkers)
	if err := c.clusterServer.waitForWorkers(waitCtx); err != nil {
		return nil, err
	}
	workers := c.clusterServer.Workers()
	ids := make([]myria.WorkerID, len(workers))
	for i, w := range workers {
		ids[i] = myria.WorkerID(w.WorkerId)
	}
	return ids, nil
}

// StopWorkers asks every registered worker to shut down
func (c *coordinator) StopWorkers(ctx context.Context) error {
	workers := c.clusterServer.Workers()
	workerConns, err := dialWorkers(workers)
	if err != nil {
		return err
	}
	defer closeGRPCConnections(workerConns)
	var wg sync.WaitGroup
	asyncErrors := iutil.CreateAsyncErrorChannel()
	wg.Add(len(workers))
	for i := range workers {
		log.Printf("Stopping worker %s...", workers[i].Id)
		go asyncStopWorker(ctx, workers[i], workerConns[i], &wg, asyncErrors)
	}
	return iutil.WaitAndFetchError(&wg, asyncErrors)
}

func asyncStopWorker(ctx context.Context, w *pb.MWorkerDescriptor, conn *grpc.ClientConn, wg *sync.WaitGroup, errors chan<- error) {
	defer wg.Done()
	lifecycleClient := pb.NewLifecycleServiceClient(conn)
	_, err := lifecycleClient.Stop(ctx, w)
	if err != nil {
		errors <- fmt.Errorf("Unable to stop worker %v\n%e", w.Id, err)
	}
}

// dialWorker opens a gRPC connection to a single worker
func dialWorker(w *pb.MWorkerDescriptor) (*grpc.ClientConn, error) {
	conn, err := grpc.Dial(fmt.Sprintf("%s:%d", w.Host, w.Port), grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("fail to dial worker %s: %v", w.Id, err)
	}
	return conn, nil
}

// dialWorkers opens gRPC connections to every given worker
func dialWorkers(workers []*pb.MWorkerDescriptor) ([]*grpc.ClientConn, error) {
	conns := make([]*grpc.ClientConn, len(workers))
	for i, w := range workers {
		conn, err := dialWorker(w)
		if err != nil {
			closeGRPCConnections(conns[:i])
			return nil, err
		}
		conns[i] = conn
	}
	return conns, nil
}

func closeGRPCConnections(conns []*grpc.ClientConn) {
	for _, conn := range conns {
		if conn != nil {
			conn.Close()
		}
	}
}

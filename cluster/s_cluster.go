package cluster

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	pb "github.com/atcbosselut/myria/internal/rpc"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc/peer"
)

// clusterServer tracks worker registration on the coordinator, assigning
// each worker the integer id it will stamp on exchange traffic
type clusterServer struct {
	opts    *NodeOptions
	lock    sync.Mutex
	workers []*pb.MWorkerDescriptor
	byUUID  map[string]bool
	joined  *semaphore.Weighted
}

// createClusterServer creates a new cluster server expecting
// opts.NumWorkers registrations
func createClusterServer(opts *NodeOptions) *clusterServer {
	joined := semaphore.NewWeighted(int64(opts.NumWorkers))
	// hold every unit until a registration releases it
	if !joined.TryAcquire(int64(opts.NumWorkers)) {
		log.Fatal("unable to initialize worker join semaphore")
	}
	return &clusterServer{
		opts:   opts,
		byUUID: make(map[string]bool),
		joined: joined,
	}
}

// RegisterWorker registers new workers with the cluster
func (s *clusterServer) RegisterWorker(ctx context.Context, req *pb.MRegisterRequest) (*pb.MRegisterResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.byUUID[req.Id] {
		return nil, fmt.Errorf("Worker %s is already registered", req.Id)
	}
	if len(s.workers) >= s.opts.NumWorkers {
		return nil, fmt.Errorf("Cluster roster is full (%d workers)", s.opts.NumWorkers)
	}
	peer, ok := peer.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("Unable to fetch peer data for connecting worker %s", req.Id)
	}
	tcpAddr, ok := peer.Addr.(*net.TCPAddr)
	if !ok {
		return nil, fmt.Errorf("Connecting worker %s is not using TCP", req.Id)
	}
	wDescriptor := &pb.MWorkerDescriptor{
		Id:       req.Id,
		WorkerId: int32(len(s.workers)),
		Host:     tcpAddr.IP.String(),
		Port:     req.Port,
	}

	// test connection
	conn, err := dialWorker(wDescriptor)
	if err != nil {
		return nil, fmt.Errorf("Unable to connect to worker %s at %s:%d", wDescriptor.Id, wDescriptor.Host, wDescriptor.Port)
	}
	defer conn.Close()

	s.byUUID[req.Id] = true
	s.workers = append(s.workers, wDescriptor)
	s.joined.Release(1)
	log.Printf("Registered worker %s as worker %d at %s:%d", wDescriptor.Id, wDescriptor.WorkerId, wDescriptor.Host, wDescriptor.Port)
	return &pb.MRegisterResponse{Time: time.Now().Unix(), AssignedWorkerId: wDescriptor.WorkerId}, nil
}

// GetRoster serves the registered workers, ordered by assigned worker id
func (s *clusterServer) GetRoster(ctx context.Context, req *pb.MRosterRequest) (*pb.MRosterResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return &pb.MRosterResponse{Workers: s.Workers()}, nil
}

// NumberOfWorkers returns the current worker count
func (s *clusterServer) NumberOfWorkers() int {
	return len(s.workers)
}

// Workers retrieves a slice of connected workers, ordered by assigned id
func (s *clusterServer) Workers() []*pb.MWorkerDescriptor {
	result := make([]*pb.MWorkerDescriptor, len(s.workers))
	copy(result, s.workers)
	return result
}

// waitForWorkers blocks until NumWorkers workers have registered, or ctx
// expires
func (s *clusterServer) waitForWorkers(ctx context.Context) error {
	if err := s.joined.Acquire(ctx, int64(s.opts.NumWorkers)); err != nil {
		return err
	}
	// the roster cannot shrink, so let later waiters through immediately
	s.joined.Release(int64(s.opts.NumWorkers))
	return nil
}

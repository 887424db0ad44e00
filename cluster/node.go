package cluster

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/exchange"
	"github.com/atcbosselut/myria/internal/stats"
)

// NodeRole describes the intended role of a Node
type NodeRole = string

const (
	// Coordinator indicates that a node should coordinate work
	//   e.g. CreateNode(Coordinator, &NodeOptions{...})
	Coordinator NodeRole = "coordinator"
	// Worker indicates that a node should perform work
	//   e.g. CreateNode(Worker, &NodeOptions{...})
	Worker NodeRole = "worker"
)

// Node is a member of a Myria cluster, either coordinating or performing
// work. Nodes present several methods to control their lifecycle.
type Node interface {
	IsCoordinator() bool
	Start() error
	GracefulStop() error
	Stop() error
	Run(ctx context.Context) ([]myria.WorkerID, error)
}

// WorkerNode extends Node with the exchange wiring only workers carry
type WorkerNode interface {
	Node
	WorkerID() myria.WorkerID
	Registry() *exchange.Registry
	Stats() *stats.ExchangeStatistics
	// InboxCapacity is the configured per-exchange buffering bound, for
	// consumers hosted on this worker to size their inboxes with
	InboxCapacity() int
	OpenRemoteSink(ctx context.Context, peer myria.WorkerID) (exchange.Sink, func() error, error)
}

// CreateWorkerNode creates a Myria worker, typed to expose its exchange
// registry and remote sinks
func CreateWorkerNode(opts *NodeOptions) (WorkerNode, error) {
	return createWorker(opts)
}

// NodeOptions are options for a Node, configuring elements of a Myria cluster
type NodeOptions struct {
	Port              int           // port for this Node to bind to
	Host              string        // hostname for this Node to bind to
	CoordinatorPort   int           // port for the Coordinator Node (potentially identical to Port if this is the Coordinator)
	CoordinatorHost   string        // [REQUIRED] hostname of the Coordinator Node (potentially identical to Host if this is the Coordinator)
	NumWorkers        int           // [REQUIRED] the number of Workers to wait for before queries may run
	WorkerJoinTimeout time.Duration // how long the Coordinator should wait for Workers to join
	WorkerJoinRetries int           // how many times a Worker should retry connecting to the Coordinator (at one second intervals)
	RPCTimeout        time.Duration // timeout for all RPC calls
	InboxCapacity     int           // undelivered messages buffered per exchange before inbound transport blocks
}

// CloneNodeOptions makes a copy of a NodeOptions
func CloneNodeOptions(opts *NodeOptions) *NodeOptions {
	return &NodeOptions{
		Port:              opts.Port,
		Host:              opts.Host,
		CoordinatorPort:   opts.CoordinatorPort,
		CoordinatorHost:   opts.CoordinatorHost,
		NumWorkers:        opts.NumWorkers,
		WorkerJoinTimeout: opts.WorkerJoinTimeout,
		WorkerJoinRetries: opts.WorkerJoinRetries,
		RPCTimeout:        opts.RPCTimeout,
		InboxCapacity:     opts.InboxCapacity,
	}
}

func ensureDefaultNodeOptionsValues(opts *NodeOptions) {
	// crash if certain required options are not supplied
	if opts.NumWorkers == 0 {
		log.Fatal("NodeOptions.NumWorkers must be greater than 0")
	}
	if len(opts.CoordinatorHost) == 0 {
		log.Fatal("NodeOptions.CoordinatorHost must be the IP address of the Myria Coordinator")
	}
	// default certain options if not supplied
	if opts.Port == 0 {
		opts.Port = 1643
	}
	if len(opts.Host) == 0 {
		opts.Host = "0.0.0.0"
	}
	if opts.CoordinatorPort == 0 {
		opts.CoordinatorPort = 1643
	}
	if opts.RPCTimeout == 0 {
		opts.RPCTimeout = time.Duration(5) * time.Second
	}
	if opts.WorkerJoinTimeout == 0 {
		opts.WorkerJoinTimeout = time.Duration(5) * time.Second
	}
	if opts.WorkerJoinRetries == 0 {
		opts.WorkerJoinRetries = 5
	}
	if opts.InboxCapacity == 0 {
		opts.InboxCapacity = 1024
	}
}

// connectionString returns the connection string for this node
func (o *NodeOptions) connectionString() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}

// coordinatorConnectionString returns the connection string for the coordinator
func (o *NodeOptions) coordinatorConnectionString() string {
	return fmt.Sprintf("%s:%d", o.CoordinatorHost, o.CoordinatorPort)
}

// CreateNodeInRole creates a Myria node in a specific role (Coordinator or Worker)
func CreateNodeInRole(role NodeRole, opts *NodeOptions) (Node, error) {
	switch role {
	case Coordinator:
		return createCoordinator(opts)
	case Worker:
		return createWorker(opts)
	default:
		return nil, fmt.Errorf("%s is an unknown NodeRole", role)
	}
}

// CreateNode creates a Myria node, deriving role from environment variables
func CreateNode(opts *NodeOptions) (Node, error) {
	if len(os.Getenv("MYRIA_NODE_TYPE")) == 0 {
		return nil, fmt.Errorf("$MYRIA_NODE_TYPE is not set - must be \"%s\" or \"%s\"", Coordinator, Worker)
	}
	switch os.Getenv("MYRIA_NODE_TYPE") {
	case Coordinator:
		return createCoordinator(opts)
	case Worker:
		return createWorker(opts)
	default:
		return nil, fmt.Errorf("$MYRIA_NODE_TYPE=\"%s\" is an unknown NodeRole", os.Getenv("MYRIA_NODE_TYPE"))
	}
}

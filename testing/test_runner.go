package testing

import (
	"context"
	"time"

	"github.com/atcbosselut/myria"
	"github.com/atcbosselut/myria/cluster"
)

// LocalCluster is a localhost coordinator plus worker set for exercising
// exchanges over real transport in tests
type LocalCluster struct {
	Coordinator cluster.Node
	Workers     []cluster.WorkerNode
	WorkerIDs   []myria.WorkerID
}

// StartLocalCluster boots a coordinator and numWorkers workers on localhost
// and blocks until every worker has registered
func StartLocalCluster(ctx context.Context, opts *cluster.NodeOptions, numWorkers int) (lc *LocalCluster, err error) {
	// handle panics
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = anErr
			} else {
				panic(r)
			}
		}
	}()

	// configure and start coordinator
	opts.Host = "127.0.0.1"
	opts.Port = 8080
	opts.CoordinatorPort = opts.Port
	opts.CoordinatorHost = "127.0.0.1"
	opts.NumWorkers = numWorkers
	opts.WorkerJoinTimeout = time.Duration(5) * time.Second
	opts.RPCTimeout = time.Duration(5) * time.Second

	coordinator, err := cluster.CreateNodeInRole(cluster.Coordinator, opts)
	if err != nil {
		return nil, err
	}
	go func() {
		err := coordinator.Start()
		if err != nil {
			panic(err)
		}
	}()
	time.Sleep(50 * time.Millisecond)

	lc = &LocalCluster{Coordinator: coordinator}
	baseWorkerPort := 8081
	// start workers
	for port := baseWorkerPort; port < baseWorkerPort+numWorkers; port++ {
		wopts := cluster.CloneNodeOptions(opts)
		wopts.Port = port
		worker, err := cluster.CreateWorkerNode(wopts)
		if err != nil {
			lc.Stop()
			return nil, err
		}
		lc.Workers = append(lc.Workers, worker)
		go func() {
			err := worker.Start()
			if err != nil {
				panic(err)
			}
		}()
	}
	// wait for the roster to fill
	ids, err := coordinator.Run(ctx)
	if err != nil {
		lc.Stop()
		return nil, err
	}
	lc.WorkerIDs = ids
	return lc, nil
}

// WorkerByID returns the worker which registered under the given id
func (lc *LocalCluster) WorkerByID(id myria.WorkerID) cluster.WorkerNode {
	for _, w := range lc.Workers {
		if w.WorkerID() == id {
			return w
		}
	}
	return nil
}

// Stop shuts the whole cluster down, workers first
func (lc *LocalCluster) Stop() {
	for _, w := range lc.Workers {
		w.GracefulStop()
	}
	lc.Coordinator.GracefulStop()
}

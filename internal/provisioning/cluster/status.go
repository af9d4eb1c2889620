package cluster

import (
	"fmt"
	"strings"

	"github.com/imamik/easycluster/internal/platform/azure"
	"github.com/imamik/easycluster/internal/provisioning"
)

// Status is a point-in-time report of a cluster's allocation and nodes.
type Status struct {
	Name              string        `json:"name"`
	VMSize            string        `json:"vmSize"`
	ProvisioningState string        `json:"provisioningState"`
	AllocationState   string        `json:"allocationState"`
	Target            int32         `json:"target"`
	Allocated         int32         `json:"allocated"`
	Idle              int32         `json:"idle"`
	Unusable          int32         `json:"unusable"`
	Running           int32         `json:"running"`
	Preparing         int32         `json:"preparing"`
	Leaving           int32         `json:"leaving"`
	Errors            []StatusError `json:"errors,omitempty"`
}

// StatusError is an error reported by the service for the cluster.
type StatusError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details []StatusDetail `json:"details,omitempty"`
}

// StatusDetail is a name/value pair attached to a StatusError.
type StatusDetail struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewStatus converts an observed cluster into a Status.
func NewStatus(c *azure.Cluster) *Status {
	s := &Status{
		Name:              c.Name,
		VMSize:            c.VMSize,
		ProvisioningState: c.ProvisioningState,
		AllocationState:   c.AllocationState,
		Target:            c.TargetNodeCount,
		Allocated:         c.CurrentNodeCount,
		Idle:              c.NodeStateCounts.Idle,
		Unusable:          c.NodeStateCounts.Unusable,
		Running:           c.NodeStateCounts.Running,
		Preparing:         c.NodeStateCounts.Preparing,
		Leaving:           c.NodeStateCounts.Leaving,
	}
	for _, e := range c.Errors {
		se := StatusError{Code: e.Code, Message: e.Message}
		for _, d := range e.Details {
			se.Details = append(se.Details, StatusDetail(d))
		}
		s.Errors = append(s.Errors, se)
	}
	return s
}

// Lines renders the status the way `cluster monitor` prints it.
func (s *Status) Lines() []string {
	lines := []string{fmt.Sprintf(
		"Cluster state: %s Target: %d; Allocated: %d; Idle: %d; Unusable: %d; Running: %d; Preparing: %d; Leaving: %d",
		s.AllocationState, s.Target, s.Allocated, s.Idle, s.Unusable, s.Running, s.Preparing, s.Leaving,
	)}
	for _, e := range s.Errors {
		lines = append(lines, fmt.Sprintf("Cluster error: %s: %s", e.Code, e.Message))
		if len(e.Details) == 0 {
			continue
		}
		lines = append(lines, "Details:")
		for _, d := range e.Details {
			lines = append(lines, fmt.Sprintf("%s: %s", d.Name, d.Value))
		}
	}
	return lines
}

// String implements fmt.Stringer.
func (s *Status) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Monitor fetches the cluster and returns its status. It does not modify
// anything and can be called repeatedly.
func Monitor(ctx *provisioning.Context) (*Status, error) {
	name := ctx.Config.Cluster.Name

	client, err := ctx.Clients.Clusters()
	if err != nil {
		return nil, err
	}

	c, err := client.GetCluster(ctx, ctx.Config.ResourceGroup, ctx.Config.Workspace, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get cluster `%s`: %w", name, err)
	}

	ctx.State.Cluster = c
	ctx.Metrics.SetClusterNodes(c)
	ctx.Log.V(1).Info("observed cluster", "cluster", name,
		"allocationState", c.AllocationState, "allocated", c.CurrentNodeCount, "errors", len(c.Errors))
	return NewStatus(c), nil
}

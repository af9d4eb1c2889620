package azure

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

const (
	batchAIModuleName    = "github.com/imamik/easycluster/internal/platform/azure"
	batchAIModuleVersion = "v0.1.0"
	batchAIAPIVersion    = "2018-05-01"
)

// batchAIClient talks to the Microsoft.BatchAI resource provider through the
// ARM pipeline (bearer token, retries, RP registration).
type batchAIClient struct {
	internal       *arm.Client
	subscriptionID string
	pollFrequency  time.Duration
}

// resourceURL builds the URL of a Batch AI resource below the provider path.
func (c *batchAIClient) resourceURL(resourceGroup string, segments ...string) string {
	path := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.BatchAI",
		url.PathEscape(c.subscriptionID), url.PathEscape(resourceGroup))
	for _, s := range segments {
		path += "/" + url.PathEscape(s)
	}
	return runtime.JoinPaths(c.internal.Endpoint(), path)
}

func (c *batchAIClient) newRequest(ctx context.Context, method, endpoint string, body any) (*policy.Request, error) {
	req, err := runtime.NewRequest(ctx, method, endpoint)
	if err != nil {
		return nil, err
	}
	q := req.Raw().URL.Query()
	q.Set("api-version", batchAIAPIVersion)
	req.Raw().URL.RawQuery = q.Encode()
	req.Raw().Header["Accept"] = []string{"application/json"}
	if body != nil {
		if err := runtime.MarshalAsJSON(req, body); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ListWorkspaces returns the workspaces of a resource group.
func (c *batchAIClient) ListWorkspaces(ctx context.Context, resourceGroup string) ([]Workspace, error) {
	pager := runtime.NewPager(runtime.PagingHandler[workspaceListResult]{
		More: func(page workspaceListResult) bool {
			return page.NextLink != nil && *page.NextLink != ""
		},
		Fetcher: func(ctx context.Context, page *workspaceListResult) (workspaceListResult, error) {
			nextLink := ""
			if page != nil {
				nextLink = *page.NextLink
			}
			resp, err := runtime.FetcherForNextLink(ctx, c.internal.Pipeline(), nextLink, func(ctx context.Context) (*policy.Request, error) {
				return c.newRequest(ctx, http.MethodGet, c.resourceURL(resourceGroup, "workspaces"), nil)
			}, nil)
			if err != nil {
				return workspaceListResult{}, err
			}
			var result workspaceListResult
			if err := runtime.UnmarshalAsJSON(resp, &result); err != nil {
				return workspaceListResult{}, err
			}
			return result, nil
		},
	})

	var workspaces []Workspace
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, ws := range page.Value {
			if ws != nil {
				workspaces = append(workspaces, ws.toWorkspace())
			}
		}
	}
	return workspaces, nil
}

// CreateWorkspace creates a workspace and waits until it is provisioned.
func (c *batchAIClient) CreateWorkspace(ctx context.Context, resourceGroup, name, location string) error {
	req, err := c.newRequest(ctx, http.MethodPut,
		c.resourceURL(resourceGroup, "workspaces", name),
		workspaceCreateParameters{Location: location})
	if err != nil {
		return err
	}
	_, err = beginAndWait[workspaceResource](ctx, c, req)
	return err
}

// CreateCluster submits the cluster and blocks until the operation is terminal.
func (c *batchAIClient) CreateCluster(ctx context.Context, resourceGroup, workspace, name string, params ClusterParameters) (*Cluster, error) {
	req, err := c.newRequest(ctx, http.MethodPut,
		c.resourceURL(resourceGroup, "workspaces", workspace, "clusters", name),
		newClusterCreateParameters(params))
	if err != nil {
		return nil, err
	}
	result, err := beginAndWait[clusterResource](ctx, c, req)
	if err != nil {
		return nil, err
	}
	return result.toCluster(), nil
}

// GetCluster fetches the current state of a cluster.
func (c *batchAIClient) GetCluster(ctx context.Context, resourceGroup, workspace, name string) (*Cluster, error) {
	req, err := c.newRequest(ctx, http.MethodGet,
		c.resourceURL(resourceGroup, "workspaces", workspace, "clusters", name), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.internal.Pipeline().Do(req)
	if err != nil {
		return nil, err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return nil, runtime.NewResponseError(resp)
	}
	var result clusterResource
	if err := runtime.UnmarshalAsJSON(resp, &result); err != nil {
		return nil, err
	}
	return result.toCluster(), nil
}

// beginAndWait sends a create request and polls the long-running operation to completion.
func beginAndWait[T any](ctx context.Context, c *batchAIClient, req *policy.Request) (T, error) {
	var zero T
	resp, err := c.internal.Pipeline().Do(req)
	if err != nil {
		return zero, err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK, http.StatusCreated, http.StatusAccepted) {
		return zero, runtime.NewResponseError(resp)
	}
	poller, err := runtime.NewPoller[T](resp, c.internal.Pipeline(), nil)
	if err != nil {
		return zero, err
	}
	return poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: c.pollFrequency})
}

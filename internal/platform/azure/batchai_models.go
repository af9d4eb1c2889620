package azure

// Wire models of the Microsoft.BatchAI 2018-05-01 REST API.

type workspaceResource struct {
	ID         *string              `json:"id,omitempty"`
	Name       *string              `json:"name,omitempty"`
	Location   *string              `json:"location,omitempty"`
	Properties *workspaceProperties `json:"properties,omitempty"`
}

type workspaceProperties struct {
	ProvisioningState *string `json:"provisioningState,omitempty"`
}

type workspaceListResult struct {
	Value    []*workspaceResource `json:"value,omitempty"`
	NextLink *string              `json:"nextLink,omitempty"`
}

type workspaceCreateParameters struct {
	Location string `json:"location"`
}

type clusterCreateParameters struct {
	Properties clusterCreateProperties `json:"properties"`
}

type clusterCreateProperties struct {
	VMSize              string              `json:"vmSize"`
	ScaleSettings       scaleSettings       `json:"scaleSettings"`
	UserAccountSettings userAccountSettings `json:"userAccountSettings"`
	NodeSetup           *nodeSetup          `json:"nodeSetup,omitempty"`
}

type scaleSettings struct {
	Manual    *manualScaleSettings `json:"manual,omitempty"`
	AutoScale *autoScaleSettings   `json:"autoScale,omitempty"`
}

type manualScaleSettings struct {
	TargetNodeCount int32 `json:"targetNodeCount"`
}

type autoScaleSettings struct {
	MinimumNodeCount int32 `json:"minimumNodeCount"`
	MaximumNodeCount int32 `json:"maximumNodeCount"`
	InitialNodeCount int32 `json:"initialNodeCount,omitempty"`
}

type userAccountSettings struct {
	AdminUserName         string `json:"adminUserName"`
	AdminUserSSHPublicKey string `json:"adminUserSshPublicKey,omitempty"`
	AdminUserPassword     string `json:"adminUserPassword,omitempty"`
}

type nodeSetup struct {
	MountVolumes *mountVolumes `json:"mountVolumes,omitempty"`
}

type mountVolumes struct {
	AzureFileShares []azureFileShareReference `json:"azureFileShares,omitempty"`
}

type azureFileShareReference struct {
	AccountName       string                  `json:"accountName"`
	AzureFileURL      string                  `json:"azureFileUrl"`
	Credentials       azureStorageCredentials `json:"credentials"`
	RelativeMountPath string                  `json:"relativeMountPath"`
}

type azureStorageCredentials struct {
	AccountKey string `json:"accountKey,omitempty"`
}

type clusterResource struct {
	ID         *string            `json:"id,omitempty"`
	Name       *string            `json:"name,omitempty"`
	Properties *clusterProperties `json:"properties,omitempty"`
}

type clusterProperties struct {
	VMSize            *string          `json:"vmSize,omitempty"`
	ScaleSettings     *scaleSettings   `json:"scaleSettings,omitempty"`
	ProvisioningState *string          `json:"provisioningState,omitempty"`
	AllocationState   *string          `json:"allocationState,omitempty"`
	CurrentNodeCount  *int32           `json:"currentNodeCount,omitempty"`
	NodeStateCounts   *nodeStateCounts `json:"nodeStateCounts,omitempty"`
	Errors            []*batchAIError  `json:"errors,omitempty"`
}

type nodeStateCounts struct {
	IdleNodeCount      *int32 `json:"idleNodeCount,omitempty"`
	RunningNodeCount   *int32 `json:"runningNodeCount,omitempty"`
	PreparingNodeCount *int32 `json:"preparingNodeCount,omitempty"`
	UnusableNodeCount  *int32 `json:"unusableNodeCount,omitempty"`
	LeavingNodeCount   *int32 `json:"leavingNodeCount,omitempty"`
}

type batchAIError struct {
	Code    *string          `json:"code,omitempty"`
	Message *string          `json:"message,omitempty"`
	Details []*nameValuePair `json:"details,omitempty"`
}

type nameValuePair struct {
	Name  *string `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}

func newClusterCreateParameters(p ClusterParameters) clusterCreateParameters {
	params := clusterCreateParameters{
		Properties: clusterCreateProperties{
			VMSize: p.VMSize,
			ScaleSettings: scaleSettings{
				Manual: &manualScaleSettings{TargetNodeCount: p.TargetNodeCount},
			},
			UserAccountSettings: userAccountSettings{
				AdminUserName:         p.AdminUsername,
				AdminUserSSHPublicKey: p.AdminSSHPublicKey,
				AdminUserPassword:     p.AdminPassword,
			},
		},
	}
	if share := p.FileShare; share != nil {
		params.Properties.NodeSetup = &nodeSetup{
			MountVolumes: &mountVolumes{
				AzureFileShares: []azureFileShareReference{{
					AccountName:       share.AccountName,
					AzureFileURL:      share.ShareURL,
					Credentials:       azureStorageCredentials{AccountKey: share.AccountKey},
					RelativeMountPath: share.RelativeMountPath,
				}},
			},
		}
	}
	return params
}

func (r *workspaceResource) toWorkspace() Workspace {
	ws := Workspace{Name: value(r.Name), Location: value(r.Location)}
	if r.Properties != nil {
		ws.ProvisioningState = value(r.Properties.ProvisioningState)
	}
	return ws
}

func (r *clusterResource) toCluster() *Cluster {
	c := &Cluster{Name: value(r.Name)}
	p := r.Properties
	if p == nil {
		return c
	}

	c.VMSize = value(p.VMSize)
	c.ProvisioningState = value(p.ProvisioningState)
	c.AllocationState = value(p.AllocationState)
	c.CurrentNodeCount = value(p.CurrentNodeCount)

	if s := p.ScaleSettings; s != nil {
		switch {
		case s.Manual != nil:
			c.TargetNodeCount = s.Manual.TargetNodeCount
		case s.AutoScale != nil:
			c.TargetNodeCount = s.AutoScale.InitialNodeCount
		}
	}

	if n := p.NodeStateCounts; n != nil {
		c.NodeStateCounts = NodeStateCounts{
			Idle:      value(n.IdleNodeCount),
			Running:   value(n.RunningNodeCount),
			Preparing: value(n.PreparingNodeCount),
			Unusable:  value(n.UnusableNodeCount),
			Leaving:   value(n.LeavingNodeCount),
		}
	}

	for _, e := range p.Errors {
		if e == nil {
			continue
		}
		ce := ClusterError{Code: value(e.Code), Message: value(e.Message)}
		for _, d := range e.Details {
			if d == nil {
				continue
			}
			ce.Details = append(ce.Details, NameValue{Name: value(d.Name), Value: value(d.Value)})
		}
		c.Errors = append(c.Errors, ce)
	}
	return c
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imamik/easycluster/internal/config"
	"github.com/imamik/easycluster/internal/platform/azure"
	"github.com/imamik/easycluster/internal/provisioning"
	"github.com/imamik/easycluster/internal/provisioning/cluster"
	testutil "github.com/imamik/easycluster/internal/testing"
	"github.com/imamik/easycluster/internal/ui/tui"
	"github.com/imamik/easycluster/internal/util/keygen"
)

var (
	testKeyOnce sync.Once
	testKey     *keygen.KeyPair
)

// adminKey returns a key pair shared by the tests of this package.
func adminKey(t *testing.T) *keygen.KeyPair {
	t.Helper()
	testKeyOnce.Do(func() {
		pair, err := keygen.Generate(2048)
		if err != nil {
			panic(err)
		}
		testKey = pair
	})
	return testKey
}

func clusterConfig(t *testing.T) *config.Config {
	return testutil.NewConfigBuilder().WithSSHPublicKey(adminKey(t).AuthorizedKey).Build()
}

func TestClusterCreate_NothingExists(t *testing.T) {
	fixture := testutil.NewAzureFixture().NothingExists()
	out := stubEnvironment(t, clusterConfig(t), fixture)

	err := ClusterCreate(context.Background(), &Options{}, ClusterCreateOptions{})
	require.NoError(t, err)

	output := out.String()
	for _, name := range []string{testutil.TestResourceGroup, testutil.TestStorageAccount, testutil.TestFileShare, testutil.TestWorkspace, testutil.TestCluster} {
		assert.Contains(t, output, "Created resource `"+name+"`.")
	}
	assert.Contains(t, output, "Cluster state: steady Target: 1; Allocated: 1; Idle: 1; Unusable: 0; Running: 0; Preparing: 0; Leaving: 0")
	assert.NotContains(t, output, "Cluster error")

	mock.AssertExpectationsForObjects(t, fixture.Mocks()...)
}

func TestClusterCreate_MountsShareWithKey(t *testing.T) {
	fixture := testutil.NewAzureFixture().NothingExists()
	stubEnvironment(t, clusterConfig(t), fixture)

	require.NoError(t, ClusterCreate(context.Background(), &Options{}, ClusterCreateOptions{}))

	require.Len(t, fixture.Clusters.Calls, 1)
	params := fixture.Clusters.Calls[0].Arguments.Get(4).(azure.ClusterParameters)
	require.NotNil(t, params.FileShare)
	assert.Equal(t, testutil.TestStorageKey, params.FileShare.AccountKey)
	assert.Equal(t, testutil.TestStorageAccount, params.FileShare.AccountName)
	assert.Equal(t, config.DefaultMountPath, params.FileShare.RelativeMountPath)
}

func TestClusterCreate_WorkspaceFailureStopsBeforeCluster(t *testing.T) {
	fixture := testutil.NewAzureFixture()
	fixture.ResourceGroups.On("ListResourceGroups", mock.Anything).Return([]string{testutil.TestResourceGroup}, nil)
	fixture.StorageAccounts.On("CheckNameAvailability", mock.Anything, testutil.TestStorageAccount).
		Return(&azure.NameAvailability{Available: false, Reason: azure.ReasonAlreadyExists}, nil)
	fixture.StorageAccounts.On("AccountExists", mock.Anything, testutil.TestResourceGroup, testutil.TestStorageAccount).Return(true, nil)
	fixture.StorageAccounts.On("ListKeys", mock.Anything, testutil.TestResourceGroup, testutil.TestStorageAccount).Return(testutil.TestKeys(), nil)
	fixture.FileService.On("ListShares", mock.Anything).Return([]string{testutil.TestFileShare}, nil)
	fixture.Workspaces.On("ListWorkspaces", mock.Anything, testutil.TestResourceGroup).Return([]azure.Workspace{}, nil)
	fixture.Workspaces.On("CreateWorkspace", mock.Anything, testutil.TestResourceGroup, testutil.TestWorkspace, testutil.TestLocation).
		Return(errors.New("quota exceeded"))

	out := stubEnvironment(t, clusterConfig(t), fixture)

	err := ClusterCreate(context.Background(), &Options{}, ClusterCreateOptions{})
	require.Error(t, err)
	assert.True(t, provisioning.IsCreateFailed(err))
	assert.Contains(t, out.String(), "Failed to create `"+testutil.TestWorkspace+"`. Exception: quota exceeded")
	assert.Contains(t, out.String(), "`"+testutil.TestFileShare+"` already exists.")
	fixture.Clusters.AssertNotCalled(t, "CreateCluster", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClusterCreate_ValidationFailsBeforeAnyCall(t *testing.T) {
	cfg := testutil.NewConfigBuilder().WithCluster("", config.DefaultVMSize, 1).Build()
	fixture := testutil.NewAzureFixture()
	stubEnvironment(t, cfg, fixture)

	credentialBuilt := false
	newCredential = func(string, string, string) (azcore.TokenCredential, error) {
		credentialBuilt = true
		return nil, nil
	}

	err := ClusterCreate(context.Background(), &Options{}, ClusterCreateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--cluster-name")
	assert.Contains(t, err.Error(), "--admin-ssh-public-key")
	assert.False(t, credentialBuilt)
}

func TestClusterCreate_GeneratesSSHKey(t *testing.T) {
	fixture := testutil.NewAzureFixture().NothingExists()
	out := stubEnvironment(t, testutil.MinimalConfig(), fixture)

	pair := adminKey(t)
	generateKey = func() (*keygen.KeyPair, error) { return pair, nil }

	keyPath := filepath.Join(t.TempDir(), "admin_rsa")
	err := ClusterCreate(context.Background(), &Options{}, ClusterCreateOptions{GenerateSSHKeyPath: keyPath})
	require.NoError(t, err)

	written, err := os.ReadFile(keyPath)
	require.NoError(t, err)
	assert.Equal(t, pair.PrivateKeyPEM, written)
	assert.Contains(t, out.String(), pair.Fingerprint)

	params := fixture.Clusters.Calls[0].Arguments.Get(4).(azure.ClusterParameters)
	assert.Equal(t, pair.AuthorizedKey, params.AdminSSHPublicKey)
}

func TestClusterCreate_ExplicitKeyWinsOverGeneration(t *testing.T) {
	fixture := testutil.NewAzureFixture().NothingExists()
	stubEnvironment(t, clusterConfig(t), fixture)

	generateKey = func() (*keygen.KeyPair, error) {
		t.Fatal("key must not be generated when a public key is configured")
		return nil, nil
	}

	keyPath := filepath.Join(t.TempDir(), "admin_rsa")
	require.NoError(t, ClusterCreate(context.Background(), &Options{}, ClusterCreateOptions{GenerateSSHKeyPath: keyPath}))
	assert.NoFileExists(t, keyPath)
}

func TestClusterCreate_PromptsForAdminPassword(t *testing.T) {
	cfg := testutil.NewConfigBuilder().WithSSHPublicKey(adminKey(t).AuthorizedKey).Build()
	cfg.Cluster.AdminPassword = ""
	fixture := testutil.NewAzureFixture().NothingExists()
	stubEnvironment(t, cfg, fixture)

	isInteractiveTTY = func() bool { return true }
	var titles []string
	promptSecret = func(_ context.Context, title, _ string) (string, error) {
		titles = append(titles, title)
		return "Typed-Passw0rd", nil
	}

	require.NoError(t, ClusterCreate(context.Background(), &Options{}, ClusterCreateOptions{}))
	assert.Equal(t, []string{"Admin password"}, titles)

	params := fixture.Clusters.Calls[0].Arguments.Get(4).(azure.ClusterParameters)
	assert.Equal(t, "Typed-Passw0rd", params.AdminPassword)
}

func TestClusterCreate_WritesMetricsFile(t *testing.T) {
	fixture := testutil.NewAzureFixture().NothingExists()
	stubEnvironment(t, clusterConfig(t), fixture)

	path := filepath.Join(t.TempDir(), "easycluster.prom")
	require.NoError(t, ClusterCreate(context.Background(), &Options{MetricsFile: path}, ClusterCreateOptions{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `easycluster_resource_ensure_total{kind="cluster",outcome="created"} 1`)
	assert.Contains(t, string(data), `easycluster_cluster_nodes{state="target"} 1`)
}

func monitorFixture(c *azure.Cluster, err error) *testutil.AzureFixture {
	fixture := testutil.NewAzureFixture()
	fixture.Clusters.On("GetCluster", mock.Anything, testutil.TestResourceGroup, testutil.TestWorkspace, testutil.TestCluster).
		Return(c, err)
	return fixture
}

func TestClusterMonitor_PrintsStatus(t *testing.T) {
	c := testutil.SteadyCluster(2)
	c.Errors = []azure.ClusterError{{
		Code:    "InsufficientQuota",
		Message: "Not enough cores",
		Details: []azure.NameValue{{Name: "Required", Value: "12"}},
	}}
	fixture := monitorFixture(c, nil)
	out := stubEnvironment(t, testutil.MinimalConfig(), fixture)

	require.NoError(t, ClusterMonitor(context.Background(), &Options{}, ClusterMonitorOptions{}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"Cluster state: steady Target: 2; Allocated: 2; Idle: 2; Unusable: 0; Running: 0; Preparing: 0; Leaving: 0",
		"Cluster error: InsufficientQuota: Not enough cores",
		"Details:",
		"Required: 12",
	}, lines)

	// Monitoring never touches the other resources.
	fixture.Factory.AssertNotCalled(t, "ResourceGroups")
	fixture.Factory.AssertNotCalled(t, "Workspaces")
}

func TestClusterMonitor_JSON(t *testing.T) {
	fixture := monitorFixture(testutil.SteadyCluster(3), nil)
	out := stubEnvironment(t, testutil.MinimalConfig(), fixture)

	require.NoError(t, ClusterMonitor(context.Background(), &Options{}, ClusterMonitorOptions{JSON: true}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, testutil.TestCluster, got["name"])
	assert.Equal(t, "steady", got["allocationState"])
	assert.EqualValues(t, 3, got["allocated"])
	assert.NotContains(t, got, "errors")
}

func TestClusterMonitor_GetFails(t *testing.T) {
	fixture := monitorFixture(nil, errors.New("ResourceNotFound"))
	stubEnvironment(t, testutil.MinimalConfig(), fixture)

	err := ClusterMonitor(context.Background(), &Options{}, ClusterMonitorOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get cluster `"+testutil.TestCluster+"`")
}

func TestClusterMonitor_WatchUsesDashboardOnTerminal(t *testing.T) {
	fixture := monitorFixture(testutil.SteadyCluster(1), nil)
	stubEnvironment(t, testutil.MinimalConfig(), fixture)
	isInteractiveTTY = func() bool { return true }

	var gotName, gotWorkspace string
	var gotStatus *cluster.Status
	runMonitorTUI = func(_ context.Context, fetch tui.FetchFunc, _ time.Duration, name, workspace string) error {
		gotName, gotWorkspace = name, workspace
		var err error
		gotStatus, err = fetch()
		return err
	}

	require.NoError(t, ClusterMonitor(context.Background(), &Options{}, ClusterMonitorOptions{Watch: true}))
	assert.Equal(t, testutil.TestCluster, gotName)
	assert.Equal(t, testutil.TestWorkspace, gotWorkspace)
	require.NotNil(t, gotStatus)
	assert.Equal(t, "steady", gotStatus.AllocationState)
}

func TestClusterMonitor_WatchPlainStopsOnCancel(t *testing.T) {
	fixture := monitorFixture(testutil.SteadyCluster(1), nil)
	out := stubEnvironment(t, testutil.MinimalConfig(), fixture)
	runMonitorTUI = func(context.Context, tui.FetchFunc, time.Duration, string, string) error {
		t.Fatal("dashboard must not run without a terminal")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, ClusterMonitor(ctx, &Options{}, ClusterMonitorOptions{Watch: true}))
	assert.Contains(t, out.String(), "--- ")
	assert.Contains(t, out.String(), "Cluster state: steady")
}

func TestWatchStatus_ReportsFetchErrors(t *testing.T) {
	saveAndRestoreFactories(t)
	out := &strings.Builder{}
	stdout = out

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	fetch := func() (*cluster.Status, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("connection reset")
		}
		cancel()
		return cluster.NewStatus(testutil.SteadyCluster(1)), nil
	}

	require.NoError(t, watchStatus(ctx, fetch, time.Millisecond, false))
	assert.GreaterOrEqual(t, calls, 2)
	assert.Contains(t, out.String(), "Could not get cluster status: connection reset")
	assert.Contains(t, out.String(), "Cluster state: steady")
}

func TestWatchStatus_StopsOnAuthError(t *testing.T) {
	saveAndRestoreFactories(t)
	stdout = &strings.Builder{}

	authErr := &provisioning.AuthError{Kind: provisioning.KindClusters, Cause: errors.New("expired")}
	err := watchStatus(context.Background(), func() (*cluster.Status, error) {
		return nil, authErr
	}, time.Millisecond, false)

	assert.ErrorIs(t, err, authErr)
}

func TestWatchStatus_NonPositiveIntervalUsesDefault(t *testing.T) {
	saveAndRestoreFactories(t)
	out := &strings.Builder{}
	stdout = out

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NotPanics(t, func() {
		require.NoError(t, watchStatus(ctx, func() (*cluster.Status, error) {
			return cluster.NewStatus(testutil.SteadyCluster(1)), nil
		}, 0, false))
	})
	assert.Contains(t, out.String(), "Cluster state: steady")
}

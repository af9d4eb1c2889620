package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/easycluster/internal/config"
	"github.com/imamik/easycluster/internal/config/wizard"
)

func testWizardResult() *wizard.WizardResult {
	return &wizard.WizardResult{
		SubscriptionID: "sub",
		ResourceGroup:  "ml-rg",
		Location:       "eastus",
		ClientID:       "client",
		TenantID:       "tenant",
		StorageAccount: "mlstorage01",
		FileShare:      "data",
		Workspace:      "ml-ws",
		ClusterName:    "gpu",
		VMSize:         "STANDARD_NC6",
		NodeCount:      "2",
		AdminUsername:  "azureuser",
	}
}

func TestInit_WritesConfig(t *testing.T) {
	saveAndRestoreFactories(t)
	out := &bytes.Buffer{}
	stdout = out

	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.WizardResult, error) {
		return testWizardResult(), nil
	}
	var written *config.Config
	var writtenPath string
	writeConfig = func(cfg *config.Config, path string) error {
		written, writtenPath = cfg, path
		return nil
	}

	require.NoError(t, Init(context.Background(), "easycluster.yaml"))

	require.NotNil(t, written)
	assert.Equal(t, "easycluster.yaml", writtenPath)
	assert.Equal(t, "ml-rg", written.ResourceGroup)
	assert.Equal(t, 2, written.Cluster.NodeCount)
	assert.Contains(t, out.String(), "Configuration saved!")
	assert.Contains(t, out.String(), "gpu, 2 x STANDARD_NC6")
	assert.Contains(t, out.String(), config.EnvClientSecret)
}

func TestInit_KeepsExistingFile(t *testing.T) {
	saveAndRestoreFactories(t)
	out := &bytes.Buffer{}
	stdout = out

	fileExists = func(string) bool { return true }
	confirmOverwrite = func(string) (bool, error) { return false, nil }
	runWizard = func(context.Context) (*wizard.WizardResult, error) {
		t.Fatal("wizard must not run when overwrite is declined")
		return nil, nil
	}

	require.NoError(t, Init(context.Background(), "easycluster.yaml"))
	assert.Contains(t, out.String(), "Aborted")
}

func TestInit_WizardCanceled(t *testing.T) {
	saveAndRestoreFactories(t)
	stdout = &bytes.Buffer{}

	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.WizardResult, error) {
		return nil, errors.New("user aborted")
	}

	err := Init(context.Background(), "easycluster.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_WriteFails(t *testing.T) {
	saveAndRestoreFactories(t)
	stdout = &bytes.Buffer{}

	fileExists = func(string) bool { return true }
	confirmOverwrite = func(string) (bool, error) { return true, nil }
	runWizard = func(context.Context) (*wizard.WizardResult, error) {
		return testWizardResult(), nil
	}
	writeConfig = func(*config.Config, string) error {
		return errors.New("read-only file system")
	}

	err := Init(context.Background(), "easycluster.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}

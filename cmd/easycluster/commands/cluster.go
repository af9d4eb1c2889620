package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/easycluster/cmd/easycluster/handlers"
)

// Cluster returns the command group for Batch AI clusters.
func Cluster(opts *handlers.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Create and monitor Batch AI clusters",
	}

	cmd.AddCommand(clusterCreate(opts))
	cmd.AddCommand(clusterMonitor(opts))

	return cmd
}

// clusterCreate returns the command that creates a cluster together with
// every resource it depends on.
//
// Flags:
//
//	--cluster-name, --node-count, --vm-size: cluster shape
//	--admin-username, --admin-password, --admin-ssh-public-key: node admin
//	--workspace: workspace of the cluster
//	--storage-account-name, --fileshare-name: share mounted on every node
//	--generate-ssh-key: write a new admin key here when no public key is given
func clusterCreate(opts *handlers.Options) *cobra.Command {
	var createOpts handlers.ClusterCreateOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a cluster and the resources it needs",
		Long: `Create a Batch AI cluster.

Resources are ensured in dependency order and only created when missing:

  1. Resource group
  2. Storage account (its key1 is used to mount the share)
  3. File share
  4. Workspace
  5. Cluster

The command waits until the service reports the cluster creation as
finished and then prints the allocation state of its nodes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ClusterCreate(cmd.Context(), opts, createOpts)
		},
	}

	o := &opts.Overrides
	cmd.Flags().StringVar(&o.Cluster.Name, "cluster-name", "", "Name of the cluster")
	cmd.Flags().IntVar(&o.Cluster.NodeCount, "node-count", 0, "Number of nodes (default 1)")
	cmd.Flags().StringVar(&o.Cluster.VMSize, "vm-size", "", "VM size of the nodes (default STANDARD_NC6)")
	cmd.Flags().StringVar(&o.Cluster.AdminUsername, "admin-username", "", "Admin user created on every node")
	cmd.Flags().StringVar(&o.Cluster.AdminPassword, "admin-password", "", "Password of the admin user")
	cmd.Flags().StringVar(&o.Cluster.AdminSSHPublicKey, "admin-ssh-public-key", "", "SSH public key of the admin user")
	cmd.Flags().StringVar(&o.Workspace, "workspace", "", "Workspace of the cluster")
	cmd.Flags().StringVar(&o.Storage.AccountName, "storage-account-name", "", "Storage account holding the file share")
	cmd.Flags().StringVar(&o.Storage.FileShareName, "fileshare-name", "", "File share mounted on every node")
	cmd.Flags().StringVar(&createOpts.GenerateSSHKeyPath, "generate-ssh-key", "", "Generate an admin key pair and write the private key to this path")

	return cmd
}

// clusterMonitor returns the command that reports the node state of a cluster.
func clusterMonitor(opts *handlers.Options) *cobra.Command {
	var monitorOpts handlers.ClusterMonitorOptions

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Show the allocation and node state of a cluster",
		Long: `Show the allocation state and node counts of a cluster, followed by
any errors the service reports for it.

With --watch the status is refreshed until interrupted. On a terminal a
live dashboard is shown; otherwise the status is printed on every refresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ClusterMonitor(cmd.Context(), opts, monitorOpts)
		},
	}

	cmd.Flags().StringVar(&opts.Overrides.Cluster.Name, "cluster-name", "", "Name of the cluster")
	cmd.Flags().StringVar(&opts.Overrides.Workspace, "workspace", "", "Workspace of the cluster")
	cmd.Flags().BoolVarP(&monitorOpts.Watch, "watch", "w", false, "Keep refreshing the status")
	cmd.Flags().BoolVar(&monitorOpts.JSON, "json", false, "Print the status as JSON")

	return cmd
}

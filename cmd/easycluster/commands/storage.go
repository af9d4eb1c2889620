package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/easycluster/cmd/easycluster/handlers"
)

// Storage returns the command group for a storage account and the Azure
// Files resources inside it.
//
// Usage:
//
//	easycluster storage --storage-account-name NAME fileshare --fileshare-name SHARE create
//	easycluster storage --storage-account-name NAME fileshare --fileshare-name SHARE directory --directory-name DIR create
func Storage(opts *handlers.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Manage the storage account and its file shares",
	}

	cmd.PersistentFlags().StringVar(&opts.Overrides.Storage.AccountName, "storage-account-name", "", "Name of the storage account")

	cmd.AddCommand(fileShare(opts))

	return cmd
}

func fileShare(opts *handlers.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fileshare",
		Short: "Manage an Azure Files share",
	}

	cmd.PersistentFlags().StringVar(&opts.Overrides.Storage.FileShareName, "fileshare-name", "", "Name of the file share")

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create the storage account and file share if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.FileShareCreate(cmd.Context(), opts)
		},
	})
	cmd.AddCommand(directory(opts))

	return cmd
}

func directory(opts *handlers.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Manage a directory at the root of a file share",
	}

	cmd.PersistentFlags().StringVar(&opts.Overrides.Storage.DirectoryName, "directory-name", "", "Name of the directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create the directory if missing",
		Long: `Create a directory at the root of the file share.

The storage account must already exist; its key1 is used to reach the share.
The file share itself is created first when it does not exist yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.DirectoryCreate(cmd.Context(), opts)
		},
	})

	return cmd
}

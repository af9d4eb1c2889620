package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/fileerror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/service"
)

type fileServiceClient struct {
	client *service.Client
}

// ListShares returns all share names of the account, snapshots included.
func (c *fileServiceClient) ListShares(ctx context.Context) ([]string, error) {
	var names []string
	pager := c.client.NewListSharesPager(&service.ListSharesOptions{
		Include: service.ListSharesInclude{Snapshots: true},
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, share := range page.Shares {
			if share != nil && share.Name != nil {
				names = append(names, *share.Name)
			}
		}
	}
	return names, nil
}

// CreateShare creates the share with the service default quota.
func (c *fileServiceClient) CreateShare(ctx context.Context, share string) error {
	_, err := c.client.NewShareClient(share).Create(ctx, nil)
	if fileerror.HasCode(err, fileerror.ShareAlreadyExists) {
		return fmt.Errorf("share %s: %w", share, ErrAlreadyExists)
	}
	return err
}

// ListRootEntries returns the directory and file names at the share root.
func (c *fileServiceClient) ListRootEntries(ctx context.Context, share string) ([]string, error) {
	var names []string
	pager := c.client.NewShareClient(share).NewRootDirectoryClient().NewListFilesAndDirectoriesPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if page.Segment == nil {
			continue
		}
		for _, dir := range page.Segment.Directories {
			if dir != nil && dir.Name != nil {
				names = append(names, *dir.Name)
			}
		}
		for _, file := range page.Segment.Files {
			if file != nil && file.Name != nil {
				names = append(names, *file.Name)
			}
		}
	}
	return names, nil
}

// CreateDirectory creates directory at the share root.
func (c *fileServiceClient) CreateDirectory(ctx context.Context, share, directory string) error {
	_, err := c.client.NewShareClient(share).NewDirectoryClient(directory).Create(ctx, nil)
	if fileerror.HasCode(err, fileerror.ResourceAlreadyExists) {
		return fmt.Errorf("directory %s: %w", directory, ErrAlreadyExists)
	}
	return err
}

package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

type resourceGroupsClient struct {
	client *armresources.ResourceGroupsClient
}

// ListResourceGroups returns the names of all resource groups of the subscription.
func (c *resourceGroupsClient) ListResourceGroups(ctx context.Context) ([]string, error) {
	var names []string
	pager := c.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, group := range page.Value {
			if group != nil && group.Name != nil {
				names = append(names, *group.Name)
			}
		}
	}
	return names, nil
}

// CreateOrUpdateResourceGroup creates the group in location.
func (c *resourceGroupsClient) CreateOrUpdateResourceGroup(ctx context.Context, name, location string) error {
	_, err := c.client.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	return err
}

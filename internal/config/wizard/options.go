package wizard

import "github.com/charmbracelet/huh"

// LocationOption represents an Azure region offering Batch AI.
type LocationOption struct {
	Value       string
	Label       string
	Description string
}

// VMSizeOption represents a cluster node size.
type VMSizeOption struct {
	Value       string
	Label       string
	Description string
}

// Locations contains the regions where Batch AI workspaces can be created.
var Locations = []LocationOption{
	{Value: "eastus", Label: "eastus", Description: "East US"},
	{Value: "eastus2", Label: "eastus2", Description: "East US 2"},
	{Value: "westus2", Label: "westus2", Description: "West US 2"},
	{Value: "westeurope", Label: "westeurope", Description: "West Europe"},
	{Value: "northeurope", Label: "northeurope", Description: "North Europe"},
	{Value: "australiaeast", Label: "australiaeast", Description: "Australia East"},
}

// VMSizes contains recommended node sizes for training clusters.
var VMSizes = []VMSizeOption{
	{Value: "STANDARD_NC6", Label: "STANDARD_NC6", Description: "6 vCPU, 56GB RAM, 1x K80"},
	{Value: "STANDARD_NC12", Label: "STANDARD_NC12", Description: "12 vCPU, 112GB RAM, 2x K80"},
	{Value: "STANDARD_NC6S_V2", Label: "STANDARD_NC6S_V2", Description: "6 vCPU, 112GB RAM, 1x P100"},
	{Value: "STANDARD_NC6S_V3", Label: "STANDARD_NC6S_V3", Description: "6 vCPU, 112GB RAM, 1x V100"},
	{Value: "STANDARD_D2_V2", Label: "STANDARD_D2_V2", Description: "2 vCPU, 7GB RAM, CPU only"},
	{Value: "STANDARD_D4_V2", Label: "STANDARD_D4_V2", Description: "8 vCPU, 28GB RAM, CPU only"},
}

// LocationsToOptions converts Locations to huh select options.
func LocationsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Locations))
	for i, loc := range Locations {
		opts[i] = huh.NewOption(loc.Label+" ("+loc.Description+")", loc.Value)
	}
	return opts
}

// VMSizesToOptions converts VMSizes to huh select options.
func VMSizesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(VMSizes))
	for i, size := range VMSizes {
		opts[i] = huh.NewOption(size.Label+" - "+size.Description, size.Value)
	}
	return opts
}

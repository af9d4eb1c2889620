package naming

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	storageAccountRegex = regexp.MustCompile(`^[a-z0-9]{3,24}$`)
	fileShareRegex      = regexp.MustCompile(`^[a-z0-9](?:-?[a-z0-9])*$`)
	resourceGroupRegex  = regexp.MustCompile(`^[-\w._()]{1,90}$`)
	batchAINameRegex    = regexp.MustCompile(`^[-\w_]{1,64}$`)
)

// invalidDirectoryChars are rejected by the Azure Files service in directory names.
const invalidDirectoryChars = `"\/:|<>*?`

// ValidateResourceGroup checks a resource group name.
func ValidateResourceGroup(name string) error {
	if !resourceGroupRegex.MatchString(name) || strings.HasSuffix(name, ".") {
		return fmt.Errorf("invalid resource group name %q: 1-90 alphanumerics, underscores, parentheses, hyphens or periods, not ending in a period", name)
	}
	return nil
}

// ValidateStorageAccount checks a storage account name: 3-24 lowercase letters or digits.
func ValidateStorageAccount(name string) error {
	if !storageAccountRegex.MatchString(name) {
		return fmt.Errorf("invalid storage account name %q: must be 3-24 lowercase letters or digits", name)
	}
	return nil
}

// ValidateFileShare checks a file share name: 3-63 lowercase letters, digits
// or single hyphens, starting and ending with a letter or digit.
func ValidateFileShare(name string) error {
	if len(name) < 3 || len(name) > 63 || !fileShareRegex.MatchString(name) {
		return fmt.Errorf("invalid file share name %q: must be 3-63 lowercase letters, digits or single hyphens", name)
	}
	return nil
}

// ValidateDirectory checks a directory name created at the share root.
func ValidateDirectory(name string) error {
	if name == "" || len(name) > 255 {
		return fmt.Errorf("invalid directory name %q: must be 1-255 characters", name)
	}
	if strings.ContainsAny(name, invalidDirectoryChars) {
		return fmt.Errorf("invalid directory name %q: must not contain any of %s", name, invalidDirectoryChars)
	}
	if strings.HasSuffix(name, ".") || strings.TrimSpace(name) != name {
		return fmt.Errorf("invalid directory name %q: must not end with a period or have surrounding spaces", name)
	}
	return nil
}

// ValidateWorkspace checks a Batch AI workspace name.
func ValidateWorkspace(name string) error {
	if !batchAINameRegex.MatchString(name) {
		return fmt.Errorf("invalid workspace name %q: must be 1-64 alphanumerics, hyphens or underscores", name)
	}
	return nil
}

// ValidateCluster checks a Batch AI cluster name.
func ValidateCluster(name string) error {
	if !batchAINameRegex.MatchString(name) {
		return fmt.Errorf("invalid cluster name %q: must be 1-64 alphanumerics, hyphens or underscores", name)
	}
	return nil
}

// FileServiceURL returns the Azure Files endpoint of a storage account.
func FileServiceURL(account string) string {
	return fmt.Sprintf("https://%s.file.core.windows.net/", account)
}

// FileShareURL returns the URL of a share, as expected by Batch AI mount volumes.
func FileShareURL(account, share string) string {
	return fmt.Sprintf("https://%s.file.core.windows.net/%s", account, share)
}

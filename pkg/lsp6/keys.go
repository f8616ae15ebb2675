package lsp6

import "github.com/lukso-network/lsp-utils-go/pkg/lsp2"

const addressPermissionsPrefix = "AddressPermissions"

// PermissionsKey returns AddressPermissions:Permissions:<controller>.
func PermissionsKey(controller string) (string, error) {
	return lsp2.GenerateMappingWithGroupingKey(addressPermissionsPrefix, "Permissions", controller)
}

// AllowedCallsKey returns AddressPermissions:AllowedCalls:<controller>.
func AllowedCallsKey(controller string) (string, error) {
	return lsp2.GenerateMappingWithGroupingKey(addressPermissionsPrefix, "AllowedCalls", controller)
}

// AllowedERC725YDataKeysKey returns
// AddressPermissions:AllowedERC725YDataKeys:<controller>.
func AllowedERC725YDataKeysKey(controller string) (string, error) {
	return lsp2.GenerateMappingWithGroupingKey(addressPermissionsPrefix, "AllowedERC725YDataKeys", controller)
}

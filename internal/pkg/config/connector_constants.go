package config

// AzureCloudProvider represents Microsoft Azure cloud provider
const AzureCloudProvider = "azure"

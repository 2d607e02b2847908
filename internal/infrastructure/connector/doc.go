// Package connector stores station photos in Azure Blob Storage.
package connector

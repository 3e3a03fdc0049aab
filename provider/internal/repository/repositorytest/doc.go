// Package repositorytest provides in-memory fakes of the AWS clients consumed
// by the repository package.
package repositorytest

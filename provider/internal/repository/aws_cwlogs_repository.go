package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/retry"
)

// CWLogsRepository manages the log groups used as stage access-log destinations.
type CWLogsRepository struct {
	API CloudWatchLogsAPI

	// RetentionTimeout bounds the retries of PutRetentionPolicy on a freshly
	// created group.
	RetentionTimeout time.Duration
}

// CreateLogGroupIfNotExists creates a log group and sets its retention.
// Zero retentionDays keeps the events forever.
func (r *CWLogsRepository) CreateLogGroupIfNotExists(ctx context.Context, name string, retentionDays int32) error {
	_, err := r.API.CreateLogGroup(ctx, &cw.CreateLogGroupInput{
		LogGroupName: aws.String(name),
	})
	if err != nil && !isAPIErrorCode(err, "ResourceAlreadyExistsException") {
		return fmt.Errorf("CreateLogGroup: %w", err)
	}

	if retentionDays <= 0 {
		return nil
	}

	timeout := r.RetentionTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// The group may not be visible yet right after creation.
	err = retry.RetryContext(ctx, timeout, func() *retry.RetryError {
		_, perr := r.API.PutRetentionPolicy(ctx, &cw.PutRetentionPolicyInput{
			LogGroupName:    aws.String(name),
			RetentionInDays: aws.Int32(retentionDays),
		})
		switch {
		case perr == nil:
			return nil
		case IsNotFound(perr), isAPIErrorCode(perr, "OperationAbortedException"):
			return retry.RetryableError(perr)
		default:
			return retry.NonRetryableError(perr)
		}
	})
	if err != nil {
		return fmt.Errorf("PutRetentionPolicy failed: %w", err)
	}
	return nil
}

// DeleteLogGroup deletes the log group. A missing group is not an error.
func (r *CWLogsRepository) DeleteLogGroup(ctx context.Context, logGroupName string) error {
	_, err := r.API.DeleteLogGroup(ctx, &cw.DeleteLogGroupInput{
		LogGroupName: aws.String(logGroupName),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteLogGroup failed: %w", err)
	}
	return nil
}

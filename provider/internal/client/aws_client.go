package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	iam "github.com/aws/aws-sdk-go-v2/service/iam"
	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	s3 "github.com/aws/aws-sdk-go-v2/service/s3"
	sts "github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// ErrPartialCredentials is returned when only one of the static key pair is set.
var ErrPartialCredentials = errors.New("access_key and secret_key must be set together")

// Config holds the provider block settings used to build the AWS clients.
type Config struct {
	Region    string
	Profile   string
	AccessKey string
	SecretKey string
}

// AWSClient holds the service clients shared by every resource.
type AWSClient struct {
	Config    aws.Config
	APIGW     *apigw.Client
	Lambda    *lambda.Client
	CWLogs    *cw.Client
	IAM       *iam.Client
	STS       *sts.Client
	S3        *s3.Client
	Region    string
	AccountID string
}

// LoadOptions translates c into aws-sdk-go-v2 config options.
func (c Config) LoadOptions() ([]func(*config.LoadOptions) error, error) {
	var opts []func(*config.LoadOptions) error

	if region := strings.TrimSpace(c.Region); region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile := strings.TrimSpace(c.Profile); profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	switch {
	case c.AccessKey != "" && c.SecretKey != "":
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	case c.AccessKey != "" || c.SecretKey != "":
		return nil, ErrPartialCredentials
	}

	return opts, nil
}

// New builds an AWSClient and resolves the caller's account ID.
func New(ctx context.Context, c Config) (*AWSClient, error) {
	opts, err := c.LoadOptions()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := &AWSClient{
		Config: cfg,
		APIGW:  apigw.NewFromConfig(cfg),
		Lambda: lambda.NewFromConfig(cfg),
		CWLogs: cw.NewFromConfig(cfg),
		IAM:    iam.NewFromConfig(cfg),
		STS:    sts.NewFromConfig(cfg),
		S3:     s3.NewFromConfig(cfg),
		Region: cfg.Region,
	}

	accountID, err := getAccountID(ctx, client.STS)
	if err != nil {
		return nil, err
	}
	client.AccountID = accountID

	tflog.Debug(ctx, "aws client configured", map[string]interface{}{
		"region":     client.Region,
		"account_id": client.AccountID,
		"profile":    c.Profile,
	})

	return client, nil
}

func getAccountID(ctx context.Context, stsClient *sts.Client) (string, error) {
	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("getting account ID: %w", err)
	}
	return aws.ToString(result.Account), nil
}

// ExecuteAPISourceArn is the source ARN granting apiID permission to invoke
// a function from any stage, method and path.
func (c *AWSClient) ExecuteAPISourceArn(apiID string) string {
	return fmt.Sprintf("arn:aws:execute-api:%s:%s:%s/*/*/*", c.Region, c.AccountID, apiID)
}

// LogGroupArn is the ARN of a CloudWatch log group in the client's account.
func (c *AWSClient) LogGroupArn(name string) string {
	return fmt.Sprintf("arn:aws:logs:%s:%s:log-group:%s", c.Region, c.AccountID, name)
}

// RestAPIArn is the ARN API Gateway tags a REST API by.
func (c *AWSClient) RestAPIArn(apiID string) string {
	return fmt.Sprintf("arn:aws:apigateway:%s::/restapis/%s", c.Region, apiID)
}

package repositorytest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	iam "github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	s3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// FakeLambda holds functions and their API Gateway permission statements.
type FakeLambda struct {
	mu sync.Mutex

	Region    string
	AccountID string
	// Functions lists the function names that exist.
	Functions map[string]bool
	// Statements maps a function name to its statement IDs and source ARNs.
	Statements map[string]map[string]string
}

func NewFakeLambda(functions ...string) *FakeLambda {
	f := &FakeLambda{
		Region:     "us-east-1",
		AccountID:  "123456789012",
		Functions:  map[string]bool{},
		Statements: map[string]map[string]string{},
	}
	for _, fn := range functions {
		f.Functions[fn] = true
	}
	return f
}

func (f *FakeLambda) arn(name string) string {
	return fmt.Sprintf("arn:aws:lambda:%s:%s:function:%s", f.Region, f.AccountID, name)
}

func (f *FakeLambda) GetFunction(_ context.Context, in *lambda.GetFunctionInput, _ ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.FunctionName)
	if !f.Functions[name] {
		return nil, &lambdatypes.ResourceNotFoundException{Message: aws.String("Function not found: " + name)}
	}
	return &lambda.GetFunctionOutput{Configuration: &lambdatypes.FunctionConfiguration{
		FunctionName: aws.String(name),
		FunctionArn:  aws.String(f.arn(name)),
	}}, nil
}

func (f *FakeLambda) AddPermission(_ context.Context, in *lambda.AddPermissionInput, _ ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.FunctionName)
	if !f.Functions[name] {
		return nil, &lambdatypes.ResourceNotFoundException{Message: aws.String("Function not found: " + name)}
	}
	sid := aws.ToString(in.StatementId)
	if _, ok := f.Statements[name][sid]; ok {
		return nil, &lambdatypes.ResourceConflictException{Message: aws.String("The statement id (" + sid + ") provided already exists")}
	}
	if f.Statements[name] == nil {
		f.Statements[name] = map[string]string{}
	}
	f.Statements[name][sid] = aws.ToString(in.SourceArn)
	return &lambda.AddPermissionOutput{}, nil
}

func (f *FakeLambda) RemovePermission(_ context.Context, in *lambda.RemovePermissionInput, _ ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, sid := aws.ToString(in.FunctionName), aws.ToString(in.StatementId)
	if _, ok := f.Statements[name][sid]; !ok {
		return nil, &lambdatypes.ResourceNotFoundException{Message: aws.String("No policy is associated with the given resource")}
	}
	delete(f.Statements[name], sid)
	return &lambda.RemovePermissionOutput{}, nil
}

// FakeCloudWatchLogs holds log groups and their retention.
type FakeCloudWatchLogs struct {
	mu sync.Mutex

	Groups map[string]int32
	// RetentionNotFound makes the first n PutRetentionPolicy calls fail as if
	// the group were not yet visible.
	RetentionNotFound int
}

func NewFakeCloudWatchLogs() *FakeCloudWatchLogs {
	return &FakeCloudWatchLogs{Groups: map[string]int32{}}
}

func (f *FakeCloudWatchLogs) CreateLogGroup(_ context.Context, in *cw.CreateLogGroupInput, _ ...func(*cw.Options)) (*cw.CreateLogGroupOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.LogGroupName)
	if _, ok := f.Groups[name]; ok {
		return nil, &cwtypes.ResourceAlreadyExistsException{Message: aws.String("The specified log group already exists")}
	}
	f.Groups[name] = 0
	return &cw.CreateLogGroupOutput{}, nil
}

func (f *FakeCloudWatchLogs) PutRetentionPolicy(_ context.Context, in *cw.PutRetentionPolicyInput, _ ...func(*cw.Options)) (*cw.PutRetentionPolicyOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.LogGroupName)
	if f.RetentionNotFound > 0 {
		f.RetentionNotFound--
		return nil, &cwtypes.ResourceNotFoundException{Message: aws.String("The specified log group does not exist")}
	}
	if _, ok := f.Groups[name]; !ok {
		return nil, &cwtypes.ResourceNotFoundException{Message: aws.String("The specified log group does not exist")}
	}
	f.Groups[name] = aws.ToInt32(in.RetentionInDays)
	return &cw.PutRetentionPolicyOutput{}, nil
}

func (f *FakeCloudWatchLogs) DeleteLogGroup(_ context.Context, in *cw.DeleteLogGroupInput, _ ...func(*cw.Options)) (*cw.DeleteLogGroupOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.LogGroupName)
	if _, ok := f.Groups[name]; !ok {
		return nil, &cwtypes.ResourceNotFoundException{Message: aws.String("The specified log group does not exist")}
	}
	delete(f.Groups, name)
	return &cw.DeleteLogGroupOutput{}, nil
}

// FakeIAM maps role names to ARNs.
type FakeIAM struct {
	Roles map[string]string
}

func (f *FakeIAM) GetRole(_ context.Context, in *iam.GetRoleInput, _ ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	name := aws.ToString(in.RoleName)
	arn, ok := f.Roles[name]
	if !ok {
		return nil, &iamtypes.NoSuchEntityException{Message: aws.String("The role with name " + name + " cannot be found.")}
	}
	return &iam.GetRoleOutput{Role: &iamtypes.Role{RoleName: aws.String(name), Arn: aws.String(arn)}}, nil
}

// FakeS3 serves objects keyed by "bucket/key".
type FakeS3 struct {
	Objects map[string][]byte
}

func (f *FakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.Objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: aws.Int64(int64(len(body))),
	}, nil
}

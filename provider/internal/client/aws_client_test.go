package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoadOptions(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    int
		wantErr error
	}{
		{name: "empty", cfg: Config{}, want: 0},
		{name: "region only", cfg: Config{Region: "us-east-1"}, want: 1},
		{name: "blank region ignored", cfg: Config{Region: "  "}, want: 0},
		{name: "profile", cfg: Config{Region: "sa-east-1", Profile: "dev"}, want: 2},
		{name: "static keys", cfg: Config{Region: "us-east-1", AccessKey: "AKIA", SecretKey: "secret"}, want: 2},
		{name: "access key only", cfg: Config{AccessKey: "AKIA"}, wantErr: ErrPartialCredentials},
		{name: "secret key only", cfg: Config{SecretKey: "secret"}, wantErr: ErrPartialCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.LoadOptions()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, opts, tt.want)
		})
	}
}

func TestARNHelpers(t *testing.T) {
	c := &AWSClient{Region: "us-east-1", AccountID: "123456789012"}

	assert.Equal(t, "arn:aws:execute-api:us-east-1:123456789012:a1b2c3/*/*/*", c.ExecuteAPISourceArn("a1b2c3"))
	assert.Equal(t, "arn:aws:logs:us-east-1:123456789012:log-group:/aws/apigateway/a1b2c3/prod", c.LogGroupArn("/aws/apigateway/a1b2c3/prod"))
}

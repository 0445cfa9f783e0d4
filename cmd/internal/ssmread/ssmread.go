// Package ssmread fetches values the stacks publish to SSM Parameter Store.
package ssmread

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/cockroachdb/errors"
)

// GetAPI is the slice of the SSM client this package uses.
type GetAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput,
		optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewClient returns an SSM client for the given region using the default
// credential chain.
func NewClient(ctx context.Context, region string) (*ssm.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "loading AWS config")
	}
	return ssm.NewFromConfig(cfg), nil
}

// Value returns the parameter's string value.
func Value(ctx context.Context, client GetAPI, name string) (string, error) {
	resp, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name: aws.String(name),
	})
	if err != nil {
		return "", errors.Wrapf(err, "getting parameter %s", name)
	}
	if resp.Parameter == nil || resp.Parameter.Value == nil {
		return "", errors.Newf("parameter %s has no value", name)
	}
	return *resp.Parameter.Value, nil
}

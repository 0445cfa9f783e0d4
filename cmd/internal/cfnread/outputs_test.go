package cfnread_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/skylifthq/skyapp/cmd/internal/cfnread"
)

type fakeDescribeAPI struct {
	stacks    []types.Stack
	err       error
	lastInput *cloudformation.DescribeStacksInput
}

func (f *fakeDescribeAPI) DescribeStacks(
	_ context.Context, params *cloudformation.DescribeStacksInput,
	_ ...func(*cloudformation.Options),
) (*cloudformation.DescribeStacksOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &cloudformation.DescribeStacksOutput{Stacks: f.stacks}, nil
}

func TestStackOutputs(t *testing.T) {
	fake := &fakeDescribeAPI{stacks: []types.Stack{{
		Outputs: []types.Output{
			{OutputKey: aws.String("SiteBucketName"), OutputValue: aws.String("skyapp-stag-assets")},
			{OutputKey: aws.String("CdnDomainName"), OutputValue: aws.String("d111.cloudfront.net")},
			{OutputKey: nil, OutputValue: aws.String("ignored")},
		},
	}}}

	outputs, err := cfnread.StackOutputs(context.Background(), fake, "skyappUse1Stag")
	if err != nil {
		t.Fatalf("StackOutputs: %v", err)
	}

	if *fake.lastInput.StackName != "skyappUse1Stag" {
		t.Errorf("StackName = %q, want skyappUse1Stag", *fake.lastInput.StackName)
	}
	if len(outputs) != 2 {
		t.Fatalf("outputs = %v, want 2 entries", outputs)
	}
	if outputs["SiteBucketName"] != "skyapp-stag-assets" {
		t.Errorf("SiteBucketName = %q", outputs["SiteBucketName"])
	}
}

func TestStackOutputs_NotFound(t *testing.T) {
	fake := &fakeDescribeAPI{}

	_, err := cfnread.StackOutputs(context.Background(), fake, "skyappUse1Stag")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("StackOutputs error = %v, want not found", err)
	}
}

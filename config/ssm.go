package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// LoadSSM reads every parameter under parameterPath from AWS Systems Manager
// Parameter Store and copies it into cfg, overwriting values taken from the
// environment. The last path element is the key, so
// /domp/prod/ADMIN_PASSWORD becomes ADMIN_PASSWORD.
// It returns the number of keys applied.
func LoadSSM(ctx context.Context, cfg map[string]string, parameterPath string) (int, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading aws config: %w", err)
	}
	return OverlaySSM(ctx, ssm.NewFromConfig(awsCfg), cfg, parameterPath)
}

// OverlaySSM is LoadSSM with an explicit client.
func OverlaySSM(ctx context.Context, client ssm.GetParametersByPathAPIClient, cfg map[string]string, parameterPath string) (int, error) {
	if !strings.HasPrefix(parameterPath, "/") {
		return 0, fmt.Errorf("ssm parameter path %q must start with /", parameterPath)
	}

	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(parameterPath),
		Recursive:      aws.Bool(false),
		WithDecryption: aws.Bool(true),
	})

	applied := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return applied, fmt.Errorf("reading ssm parameters under %s: %w", parameterPath, err)
		}
		for _, p := range page.Parameters {
			key := path.Base(aws.ToString(p.Name))
			if key == "" || key == "/" || key == "." {
				continue
			}
			cfg[key] = aws.ToString(p.Value)
			applied++
		}
	}
	return applied, nil
}
